package services

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// userLocks сериализует заполнение кэша и продление подписки одного пользователя.
// Пользователи распределяются по фиксированному набору мьютексов.
type userLocks [lockStripes]sync.Mutex

func (l *userLocks) lock(userID string) (unlock func()) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	m := &l[h.Sum32()%lockStripes]
	m.Lock()
	return m.Unlock
}
