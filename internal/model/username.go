package model

import "strings"

// NormalizeUsername приводит имя пользователя к каноническому виду.
// Имена на платформе сравниваются без учета регистра.
func NormalizeUsername(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// UserSet представляет множество имен пользователей без учета регистра
type UserSet map[string]struct{}

// NewUserSet создает множество из списка имен
func NewUserSet(names ...string) UserSet {
	set := make(UserSet, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add добавляет имя в множество
func (s UserSet) Add(name string) {
	s[NormalizeUsername(name)] = struct{}{}
}

// Contains проверяет наличие имени в множестве
func (s UserSet) Contains(name string) bool {
	_, ok := s[NormalizeUsername(name)]
	return ok
}

// Len возвращает размер множества
func (s UserSet) Len() int {
	return len(s)
}
