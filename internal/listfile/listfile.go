// Package listfile содержит чтение списков пользователей из текстовых файлов.
package listfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"followsync/internal/model"

	"go.uber.org/zap"
)

// Store читает пользовательские списки (whitelist, blacklist) с диска
type Store struct {
	logger *zap.Logger
}

// NewStore создает новое хранилище списков
func NewStore(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// LoadSet загружает множество имен из файла.
// Пустые строки и строки, начинающиеся с '#', пропускаются.
// Отсутствующий файл трактуется как пустое множество.
func (s *Store) LoadSet(path string) (model.UserSet, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("List file does not exist, using empty set", zap.String("path", path))
			return model.UserSet{}, nil
		}
		return nil, fmt.Errorf("failed to open list file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warn("Failed to close list file", zap.String("path", path), zap.Error(err))
		}
	}()

	set := model.UserSet{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list file: %w", err)
	}

	s.logger.Debug("Loaded list file", zap.String("path", path), zap.Int("entries", set.Len()))
	return set, nil
}
