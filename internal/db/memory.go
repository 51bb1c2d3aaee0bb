package db

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MahmoudAkram21/um-qura/internal/model"
)

// MemStore is an in-memory Store used by handler and end-to-end tests.
type MemStore struct {
	mu        sync.Mutex
	nextID    int
	admins    map[int]model.Admin
	seasons   map[int]model.Season
	stars     map[int]model.Star
	occasions map[int]model.Occasion
	prayers   map[int]model.Prayer
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		nextID:    1,
		admins:    make(map[int]model.Admin),
		seasons:   make(map[int]model.Season),
		stars:     make(map[int]model.Star),
		occasions: make(map[int]model.Occasion),
		prayers:   make(map[int]model.Prayer),
	}
}

func (m *MemStore) id() int {
	id := m.nextID
	m.nextID++
	return id
}

func (m *MemStore) GetAdminByEmail(email string) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Email == email {
			admin := a
			return &admin, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemStore) GetAdminByID(id int) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *MemStore) CreateAdmin(email, hashedPassword string, name *string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	m.admins[id] = model.Admin{
		ID: id, Email: email, HashedPassword: hashedPassword, Name: name,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	return id, nil
}

func (m *MemStore) ListSeasons() ([]model.Season, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Season, 0, len(m.seasons))
	for _, s := range m.seasons {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemStore) GetSeasonByID(id int) (model.Season, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.seasons[id]
	if !ok {
		return model.Season{}, ErrNotFound
	}
	return s, nil
}

func (m *MemStore) CreateSeason(name, colorHex, iconName, duration string, sortOrder int) (model.Season, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	s := model.Season{
		ID: id, Name: name, ColorHex: colorHex, IconName: iconName,
		Duration: duration, SortOrder: sortOrder,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	m.seasons[id] = s
	return s, nil
}

func (m *MemStore) UpdateSeason(id int, name, colorHex, iconName, duration *string, sortOrder *int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.seasons[id]
	if !ok {
		return ErrNotFound
	}
	if name != nil {
		s.Name = *name
	}
	if colorHex != nil {
		s.ColorHex = *colorHex
	}
	if iconName != nil {
		s.IconName = *iconName
	}
	if duration != nil {
		s.Duration = *duration
	}
	if sortOrder != nil {
		s.SortOrder = *sortOrder
	}
	s.UpdatedAt = time.Now()
	m.seasons[id] = s
	return nil
}

func (m *MemStore) DeleteSeason(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seasons[id]; !ok {
		return ErrNotFound
	}
	delete(m.seasons, id)
	// mirrors ON DELETE CASCADE
	for sid, st := range m.stars {
		if st.SeasonID == id {
			delete(m.stars, sid)
		}
	}
	return nil
}

func (m *MemStore) sortedStars(seasonID *int) []model.Star {
	out := make([]model.Star, 0, len(m.stars))
	for _, st := range m.stars {
		if seasonID != nil && st.SeasonID != *seasonID {
			continue
		}
		if se, ok := m.seasons[st.SeasonID]; ok {
			name := se.Name
			st.SeasonName = &name
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate < out[j].StartDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *MemStore) ListStars(page, limit int, seasonID *int) ([]model.Star, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.sortedStars(seasonID)
	total := len(all)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (m *MemStore) ListStarsBySeason(seasonID int) ([]model.Star, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedStars(&seasonID), nil
}

func (m *MemStore) GetStarByID(id int) (model.Star, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.stars[id]
	if !ok {
		return model.Star{}, ErrNotFound
	}
	if se, ok := m.seasons[st.SeasonID]; ok {
		name := se.Name
		st.SeasonName = &name
	}
	return st, nil
}

func (m *MemStore) CreateStar(n NewStar) (model.Star, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	se, ok := m.seasons[n.SeasonID]
	if !ok {
		return model.Star{}, fmt.Errorf("season %d does not exist", n.SeasonID)
	}
	// mirrors the stars_date_range CHECK
	if n.StartDate > n.EndDate {
		return model.Star{}, fmt.Errorf("start_date %s after end_date %s", n.StartDate, n.EndDate)
	}
	id := m.id()
	st := model.Star{
		ID: id, SeasonID: n.SeasonID, Name: n.Name,
		StartDate: n.StartDate, EndDate: n.EndDate,
		Description: n.Description, WeatherInfo: n.WeatherInfo,
		AgriculturalInfo: append([]string{}, n.AgriculturalInfo...),
		Tips:             append([]string{}, n.Tips...),
		CreatedAt:        time.Now(), UpdatedAt: time.Now(),
	}
	m.stars[id] = st
	name := se.Name
	st.SeasonName = &name
	return st, nil
}

func (m *MemStore) UpdateStar(id int, p StarPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.stars[id]
	if !ok {
		return ErrNotFound
	}
	if p.SeasonID != nil {
		if _, ok := m.seasons[*p.SeasonID]; !ok {
			return fmt.Errorf("season %d does not exist", *p.SeasonID)
		}
		st.SeasonID = *p.SeasonID
	}
	if p.Name != nil {
		st.Name = *p.Name
	}
	if p.StartDate != nil {
		st.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		st.EndDate = *p.EndDate
	}
	// mirrors the stars_date_range CHECK
	if st.StartDate > st.EndDate {
		return fmt.Errorf("start_date %s after end_date %s", st.StartDate, st.EndDate)
	}
	if p.Description != nil {
		st.Description = p.Description
	}
	if p.WeatherInfo != nil {
		st.WeatherInfo = p.WeatherInfo
	}
	if p.AgriculturalInfo != nil {
		st.AgriculturalInfo = append([]string{}, p.AgriculturalInfo...)
	}
	if p.Tips != nil {
		st.Tips = append([]string{}, p.Tips...)
	}
	st.UpdatedAt = time.Now()
	m.stars[id] = st
	return nil
}

func (m *MemStore) DeleteStar(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stars[id]; !ok {
		return ErrNotFound
	}
	delete(m.stars, id)
	return nil
}

func (m *MemStore) sortedOccasions() []model.Occasion {
	out := make([]model.Occasion, 0, len(m.occasions))
	for _, o := range m.occasions {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.HijriMonth != b.HijriMonth {
			return a.HijriMonth < b.HijriMonth
		}
		if a.HijriDay != b.HijriDay {
			return a.HijriDay < b.HijriDay
		}
		return a.ID < b.ID
	})
	return out
}

func (m *MemStore) ListOccasions(page, limit int) ([]model.Occasion, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.sortedOccasions()
	total := len(all)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (m *MemStore) ListAllOccasions() ([]model.Occasion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedOccasions(), nil
}

func (m *MemStore) GetOccasionByID(id int) (model.Occasion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.occasions[id]
	if !ok {
		return model.Occasion{}, ErrNotFound
	}
	return o, nil
}

func (m *MemStore) CreateOccasion(n NewOccasion) (model.Occasion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	o := model.Occasion{
		ID: id, HijriMonth: n.HijriMonth, HijriDay: n.HijriDay,
		Title: n.Title, PrayerTitle: n.PrayerTitle, PrayerText: n.PrayerText,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	m.occasions[id] = o
	return o, nil
}

func (m *MemStore) UpdateOccasion(id int, p OccasionPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.occasions[id]
	if !ok {
		return ErrNotFound
	}
	if p.HijriMonth != nil {
		o.HijriMonth = *p.HijriMonth
	}
	if p.HijriDay != nil {
		o.HijriDay = *p.HijriDay
	}
	if p.Title != nil {
		o.Title = *p.Title
	}
	if p.PrayerTitle != nil {
		o.PrayerTitle = *p.PrayerTitle
	}
	if p.PrayerText != nil {
		o.PrayerText = p.PrayerText
	}
	o.UpdatedAt = time.Now()
	m.occasions[id] = o
	return nil
}

func (m *MemStore) DeleteOccasion(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.occasions[id]; !ok {
		return ErrNotFound
	}
	delete(m.occasions, id)
	return nil
}

func (m *MemStore) ListPrayers(page, limit int) ([]model.Prayer, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Prayer, 0, len(m.prayers))
	for _, p := range m.prayers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := len(out)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return out[start:end], total, nil
}

func (m *MemStore) GetPrayerByID(id int) (model.Prayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prayers[id]
	if !ok {
		return model.Prayer{}, ErrNotFound
	}
	return p, nil
}

func (m *MemStore) CreatePrayer(text string) (model.Prayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	p := model.Prayer{ID: id, Text: text, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.prayers[id] = p
	return p, nil
}

func (m *MemStore) UpdatePrayer(id int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prayers[id]
	if !ok {
		return ErrNotFound
	}
	p.Text = text
	p.UpdatedAt = time.Now()
	m.prayers[id] = p
	return nil
}

func (m *MemStore) DeletePrayer(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.prayers[id]; !ok {
		return ErrNotFound
	}
	delete(m.prayers, id)
	return nil
}
