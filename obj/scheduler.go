package obj

// Scheduler runs updaters in the order they were added.
type Scheduler struct {
	updaters []Updater
}

func NewScheduler(updaters ...Updater) *Scheduler {
	copied := make([]Updater, 0, len(updaters))
	for _, u := range updaters {
		if u != nil {
			copied = append(copied, u)
		}
	}
	return &Scheduler{updaters: copied}
}

func (s *Scheduler) Add(u Updater) {
	if u == nil {
		return
	}
	s.updaters = append(s.updaters, u)
}

func (s *Scheduler) Update() {
	for _, u := range s.updaters {
		u.Update()
	}
}

func (s *Scheduler) Updaters() []Updater {
	updaters := make([]Updater, 0, len(s.updaters))
	return append(updaters, s.updaters...)
}
