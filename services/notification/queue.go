// File: autoconecta/services/notification/queue.go
package notification

import (
	"sync"
	"time"

	"autoconecta/models"

	"github.com/google/uuid"
)

// DefaultDuration is how long a notification stays up when the caller
// does not say otherwise.
const DefaultDuration = 5000 * time.Millisecond

// Options tunes a pushed notification. Autodismiss defaults to true;
// only an explicit false keeps the notification up until dismissed.
type Options struct {
	Autodismiss *bool
	Duration    time.Duration
	Action      func()
}

// Queue holds one screen's transient notifications in insertion order.
// Auto-dismiss timers are cancellable, so a manual dismissal stops the
// pending timer; a timer that fires after removal is a harmless no-op.
type Queue struct {
	mu      sync.Mutex
	items   []*models.Notification
	timers  map[string]*time.Timer
	actions map[string]func()
}

func NewQueue() *Queue {
	return &Queue{
		timers:  make(map[string]*time.Timer),
		actions: make(map[string]func()),
	}
}

// Push appends a notification and schedules its auto-dismiss timer
// unless opts.Autodismiss is explicitly false.
func (q *Queue) Push(tipo, titulo, mensaje string, opts Options) *models.Notification {
	n := &models.Notification{
		ID:        uuid.New().String(),
		Tipo:      tipo,
		Titulo:    titulo,
		Mensaje:   mensaje,
		Visible:   true,
		CreatedAt: time.Now(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, n)
	if opts.Action != nil {
		q.actions[n.ID] = opts.Action
	}

	if opts.Autodismiss == nil || *opts.Autodismiss {
		duration := opts.Duration
		if duration <= 0 {
			duration = DefaultDuration
		}
		id := n.ID
		q.timers[id] = time.AfterFunc(duration, func() {
			q.Dismiss(id)
		})
	}

	return n
}

// Dismiss removes one notification immediately, cancelling its timer.
// Dismissing an id that is already gone does nothing.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.removeLocked(id)
}

// DismissAll clears the queue and every pending timer.
func (q *Queue) DismissAll() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.items = nil
	q.actions = make(map[string]func())
}

// List returns the visible notifications in insertion order.
func (q *Queue) List() []*models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]*models.Notification, len(q.items))
	copy(out, q.items)
	return out
}

// RunAction invokes the optional action attached to a notification.
// Reports whether an action existed.
func (q *Queue) RunAction(id string) bool {
	q.mu.Lock()
	action := q.actions[id]
	q.mu.Unlock()

	if action == nil {
		return false
	}
	action()
	return true
}

func (q *Queue) removeLocked(id string) {
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	delete(q.actions, id)
	for i, n := range q.items {
		if n.ID == id {
			n.Visible = false
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Convenience constructors mirroring the severities the screens use.

func (q *Queue) Exito(titulo, mensaje string) *models.Notification {
	return q.Push(models.NotifExito, titulo, mensaje, Options{})
}

func (q *Queue) Error(titulo, mensaje string) *models.Notification {
	return q.Push(models.NotifError, titulo, mensaje, Options{})
}

func (q *Queue) Advertencia(titulo, mensaje string) *models.Notification {
	return q.Push(models.NotifAdvertencia, titulo, mensaje, Options{})
}

func (q *Queue) Informacion(titulo, mensaje string) *models.Notification {
	return q.Push(models.NotifInformacion, titulo, mensaje, Options{})
}
