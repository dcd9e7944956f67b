package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/shaiso/restaurant/internal/domain"
)

// MenuRepo — in-memory репозиторий позиций меню.
//
// Коллекция живёт всё время жизни процесса и не сохраняется между рестартами.
// Все изменения сериализуются одним мьютексом: вычисление следующего ID
// и вставка выполняются под одной блокировкой записи.
type MenuRepo struct {
	mu    sync.RWMutex
	items []domain.MenuItem
}

// NewMenuRepo создаёт репозиторий с начальными данными.
// Порядок seed сохраняется как порядок вставки.
func NewMenuRepo(seed []domain.MenuItem) *MenuRepo {
	items := make([]domain.MenuItem, len(seed))
	for i, item := range seed {
		items[i] = item.Clone()
	}
	return &MenuRepo{items: items}
}

// List возвращает все позиции в порядке вставки.
func (r *MenuRepo) List(_ context.Context) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.MenuItem, len(r.items))
	for i, item := range r.items {
		result[i] = item.Clone()
	}
	return result, nil
}

// GetByID возвращает позицию по ID.
func (r *MenuRepo) GetByID(_ context.Context, id int) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, ErrNotFound
	}
	item := r.items[idx].Clone()
	return &item, nil
}

// Create добавляет позицию в конец коллекции и назначает ей ID.
// ID поля item игнорируется и перезаписывается.
func (r *MenuRepo) Create(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID()
	r.items = append(r.items, item.Clone())
	return nil
}

// Replace полностью перезаписывает позицию с ID item.ID, сохраняя её место в коллекции.
func (r *MenuRepo) Replace(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(item.ID)
	if idx == -1 {
		return ErrNotFound
	}
	r.items[idx] = item.Clone()
	return nil
}

// Delete удаляет позицию и возвращает удалённую запись.
func (r *MenuRepo) Delete(_ context.Context, id int) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, ErrNotFound
	}
	deleted := r.items[idx]
	r.items = slices.Delete(r.items, idx, idx+1)
	return &deleted, nil
}

// Len возвращает текущее количество позиций.
func (r *MenuRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// nextID пересчитывает следующий ID от текущего максимума.
// После удаления позиции с максимальным ID её номер будет выдан повторно.
// Вызывается под r.mu.
func (r *MenuRepo) nextID() int {
	maxID := 0
	for _, item := range r.items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

// indexOf — линейный поиск по ID. Вызывается под r.mu.
func (r *MenuRepo) indexOf(id int) int {
	for i, item := range r.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
