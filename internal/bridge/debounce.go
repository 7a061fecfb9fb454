package bridge

import (
	"sync"
	"time"
)

// Debouncer откладывает выполнение callback'а до затишья.
// Единственный pending-слот: каждый новый Trigger отменяет предыдущий
// таймер и заводит его заново, поэтому за один период активности
// callback срабатывает не более одного раза. После Close любой
// запланированный вызов становится no-op.
type Debouncer struct {
	interval time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewDebouncer создаёт Debouncer с заданным периодом затишья
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger сбрасывает pending-таймер и планирует fn через interval
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		closed := d.closed
		d.mu.Unlock()
		if closed {
			return
		}
		fn()
	})
}

// Close отменяет pending-таймер; дальнейшие Trigger игнорируются
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
