package repository

import "time"

// QueryObserver receives the duration of every statement a repository issues.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

type observed struct {
	observer QueryObserver
}

func (o observed) observe(label string, start time.Time) {
	if o.observer != nil {
		o.observer.ObserveDBQuery(label, time.Since(start))
	}
}
