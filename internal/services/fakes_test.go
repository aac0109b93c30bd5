package services

import (
	"sort"
	"sync"
	"time"

	"campus_backend/internal/models"
	"campus_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the contracts of the real
// implementations (sentinel errors, set semantics, ordering) so the service
// layer can be tested without a database.

type fakeEventRepo struct {
	mu     sync.Mutex
	nextID uint
	events map[uint]*models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1, events: make(map[uint]*models.Event)}
}

func (r *fakeEventRepo) Create(event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = r.nextID
	r.nextID++
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *fakeEventRepo) FindByID(id uint) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	cp := *event
	cp.Registrations = append([]models.EventRegistration(nil), event.Registrations...)
	return &cp, nil
}

func (r *fakeEventRepo) FindAll() ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []models.Event
	for id := uint(1); id < r.nextID; id++ {
		if event, ok := r.events[id]; ok {
			events = append(events, *event)
		}
	}
	return events, nil
}

func (r *fakeEventRepo) FindByStatus(status string) ([]models.Event, error) {
	all, _ := r.FindAll()
	var events []models.Event
	for _, event := range all {
		if event.Status == status {
			events = append(events, event)
		}
	}
	return events, nil
}

func (r *fakeEventRepo) Save(event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.events[event.ID]
	if !ok {
		return repositories.ErrEventNotFound
	}
	regs := stored.Registrations
	cp := *event
	cp.Registrations = regs
	r.events[event.ID] = &cp
	return nil
}

func (r *fakeEventRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) AddRegistration(eventID uint, userEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[eventID]
	if !ok {
		return repositories.ErrEventNotFound
	}
	for _, reg := range event.Registrations {
		if reg.UserEmail == userEmail {
			return nil
		}
	}
	if len(event.Registrations) >= event.MaxAttendees {
		return repositories.ErrEventFull
	}
	event.Registrations = append(event.Registrations, models.EventRegistration{
		EventID:   eventID,
		UserEmail: userEmail,
	})
	return nil
}

func (r *fakeEventRepo) RemoveRegistration(eventID uint, userEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[eventID]
	if !ok {
		return nil
	}
	regs := event.Registrations[:0]
	for _, reg := range event.Registrations {
		if reg.UserEmail != userEmail {
			regs = append(regs, reg)
		}
	}
	event.Registrations = regs
	return nil
}

func (r *fakeEventRepo) CountRegistrations(eventID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[eventID]
	if !ok {
		return 0, nil
	}
	return int64(len(event.Registrations)), nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	nextID        uint
	notifications []*models.Notification
	createErr     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	notification.ID = r.nextID
	r.nextID++
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	cp := *notification
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) FindByID(id uint) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

// FindByUserEmail returns the user's notifications newest first, matching the
// created_at DESC ordering of the real repository.
func (r *fakeNotificationRepo) FindByUserEmail(userEmail string) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Notification
	for _, n := range r.notifications {
		if n.UserEmail == userEmail {
			result = append(result, *n)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeNotificationRepo) MarkAsRead(id uint) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			n.IsRead = true
			cp := *n
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(userEmail string) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated []models.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if n.UserEmail == userEmail && !n.IsRead {
			n.IsRead = true
			updated = append(updated, *n)
		}
	}
	return updated, nil
}

func (r *fakeNotificationRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}

func (r *fakeNotificationRepo) DeleteByUserEmail(userEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.UserEmail != userEmail {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(userEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserEmail == userEmail && !n.IsRead {
			count++
		}
	}
	return count, nil
}

type fakeStudentRepo struct {
	mu       sync.Mutex
	nextID   uint
	students map[uint]*models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{nextID: 1, students: make(map[uint]*models.Student)}
}

func (r *fakeStudentRepo) Create(student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	student.ID = r.nextID
	r.nextID++
	cp := *student
	r.students[student.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) FindByID(id uint) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	cp := *student
	return &cp, nil
}

func (r *fakeStudentRepo) FindByEmail(email string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, student := range r.students {
		if student.Email == email {
			cp := *student
			return &cp, nil
		}
	}
	return nil, repositories.ErrStudentNotFound
}

func (r *fakeStudentRepo) FindByStatus(status models.AccountStatus) ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var students []models.Student
	for id := uint(1); id < r.nextID; id++ {
		if student, ok := r.students[id]; ok && student.Status == status {
			students = append(students, *student)
		}
	}
	return students, nil
}

func (r *fakeStudentRepo) FindAll() ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var students []models.Student
	for id := uint(1); id < r.nextID; id++ {
		if student, ok := r.students[id]; ok {
			students = append(students, *student)
		}
	}
	return students, nil
}

func (r *fakeStudentRepo) Save(student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[student.ID]; !ok {
		return repositories.ErrStudentNotFound
	}
	cp := *student
	r.students[student.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.students, id)
	return nil
}

type fakePrAdminRepo struct {
	mu     sync.Mutex
	nextID uint
	admins map[uint]*models.PrAdmin
}

func newFakePrAdminRepo() *fakePrAdminRepo {
	return &fakePrAdminRepo{nextID: 1, admins: make(map[uint]*models.PrAdmin)}
}

func (r *fakePrAdminRepo) Create(admin *models.PrAdmin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin.ID = r.nextID
	r.nextID++
	cp := *admin
	r.admins[admin.ID] = &cp
	return nil
}

func (r *fakePrAdminRepo) FindByID(id uint) (*models.PrAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, repositories.ErrPrAdminNotFound
	}
	cp := *admin
	return &cp, nil
}

func (r *fakePrAdminRepo) FindByEmail(email string) (*models.PrAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Email == email {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, repositories.ErrPrAdminNotFound
}

func (r *fakePrAdminRepo) FindAll() ([]models.PrAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var admins []models.PrAdmin
	for id := uint(1); id < r.nextID; id++ {
		if admin, ok := r.admins[id]; ok {
			admins = append(admins, *admin)
		}
	}
	return admins, nil
}

func (r *fakePrAdminRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.admins, id)
	return nil
}

type fakeEmailProvider struct {
	mu   sync.Mutex
	sent []string
}

func (p *fakeEmailProvider) Send(to, subject, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, to)
	return nil
}
