package profile

import "sync"

// Store holds the single user profile of the process.
type Store struct {
	mutex       sync.RWMutex
	profile     *UserProfile
	defaultGoal float64
}

func NewStore(defaultGoal float64) *Store {
	if defaultGoal <= 0 {
		defaultGoal = DefaultWeeklyCalorieGoal
	}
	return &Store{defaultGoal: defaultGoal}
}

// Save replaces the stored profile as a whole.
func (s *Store) Save(p UserProfile) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.profile = &p
}

func (s *Store) Get() (UserProfile, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.profile == nil {
		return UserProfile{}, false
	}
	return *s.profile, true
}

// WeightKg is nil until a profile is saved.
func (s *Store) WeightKg() *float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.profile == nil {
		return nil
	}
	w := s.profile.WeightKg
	return &w
}

func (s *Store) WeeklyCalorieGoal() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.profile == nil {
		return s.defaultGoal
	}
	return s.profile.WeeklyCalorieGoal
}

func (s *Store) DefaultGoal() float64 {
	return s.defaultGoal
}
