package store

import (
	"fmt"
	"regexp"

	"go-tea-store/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var mobileRe = regexp.MustCompile(`^\d{10}$`)

// defaultPassword is assigned when an admin creates an account without one.
const defaultPassword = "123456"

// Login looks the account up by mobile first, then checks the password, then
// the approval flag. The three failures stay distinguishable for the caller.
func (s *Store) Login(mobile, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.findUserByMobile(mobile)
	if !ok {
		return models.User{}, ErrAccountNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return models.User{}, ErrWrongPassword
	}
	if u.Role == models.RoleDistributor && !u.Approved {
		return models.User{}, ErrNotApproved
	}
	return u, nil
}

// Register creates a self-service account. Customers are usable immediately;
// distributors start unapproved and cannot log in until an admin approves.
func (s *Store) Register(name, mobile, password string, role models.Role, territory string) (models.User, error) {
	if name == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: name and password are required", ErrValidation)
	}
	if !mobileRe.MatchString(mobile) {
		return models.User{}, fmt.Errorf("%w: mobile must be 10 digits", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findUserByMobile(mobile); ok {
		return models.User{}, ErrMobileExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Mobile:    mobile,
		Password:  string(hash),
		Role:      role,
		Approved:  role != models.RoleDistributor,
		Territory: territory,
	}

	if err := s.backend.InsertUser(u); err != nil {
		return models.User{}, err
	}
	s.users = append(s.users, u)
	return u, nil
}

// AddUser is the admin path: accounts created here are auto-approved and get
// a default password when none is supplied.
func (s *Store) AddUser(u models.User) (models.User, error) {
	if u.Name == "" {
		return models.User{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !mobileRe.MatchString(u.Mobile) {
		return models.User{}, fmt.Errorf("%w: mobile must be 10 digits", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findUserByMobile(u.Mobile); ok {
		return models.User{}, ErrMobileExists
	}

	if u.Password == "" {
		u.Password = defaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u.Password = string(hash)

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Approved = true

	if err := s.backend.InsertUser(u); err != nil {
		return models.User{}, err
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) ApproveDistributor(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == userID {
			u := s.users[i]
			u.Approved = true
			if err := s.backend.UpdateUser(u); err != nil {
				return err
			}
			s.users[i] = u
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", userID, ErrNotFound)
}

// UpdateUserPassword overwrites the stored credential. The only rule is
// non-empty; password strength is left to the operator.
func (s *Store) UpdateUserPassword(userID, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password must not be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == userID {
			hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			u := s.users[i]
			u.Password = string(hash)
			if err := s.backend.UpdateUser(u); err != nil {
				return err
			}
			s.users[i] = u
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", userID, ErrNotFound)
}

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// findUserByMobile assumes the caller holds the lock.
func (s *Store) findUserByMobile(mobile string) (models.User, bool) {
	for _, u := range s.users {
		if u.Mobile == mobile {
			return u, true
		}
	}
	return models.User{}, false
}
