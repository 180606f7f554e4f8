package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// AllowList — список пользователей, которым разрешено сохранять заметки.
type AllowList interface {
	Contains(userID int64) bool
	Add(userID int64) error
}

type allowedUsersFile struct {
	Allowed []int64 `json:"allowed"`
}

// fileAllowList держит список в памяти и сохраняет его в JSON-файл.
// Запись идёт через временный файл и rename, чтобы параллельная запись
// не оставила обрезанный файл.
type fileAllowList struct {
	path string

	mu    sync.Mutex
	users map[int64]struct{}
}

// NewFileAllowList загружает список из файла path; отсутствующий файл
// создаётся пустым.
func NewFileAllowList(path string) (AllowList, error) {
	l := &fileAllowList{
		path:  path,
		users: make(map[int64]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := l.save(); err != nil {
				return nil, err
			}
			return l, nil
		}
		return nil, err
	}

	var f allowedUsersFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("users file %s: %w", path, err)
	}
	for _, id := range f.Allowed {
		l.users[id] = struct{}{}
	}

	return l, nil
}

func (l *fileAllowList) Contains(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.users[userID]
	return ok
}

func (l *fileAllowList) Add(userID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.users[userID]; ok {
		return nil
	}
	l.users[userID] = struct{}{}

	return l.save()
}

// save вызывается только под l.mu (или из конструктора).
func (l *fileAllowList) save() error {
	f := allowedUsersFile{Allowed: make([]int64, 0, len(l.users))}
	for id := range l.users {
		f.Allowed = append(f.Allowed, id)
	}
	sort.Slice(f.Allowed, func(i, j int) bool { return f.Allowed[i] < f.Allowed[j] })

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".allowed_users-*")
	if err != nil {
		return fmt.Errorf("users file %s: %w", l.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), l.path)
}
