package service

import (
	"context"

	"github.com/clavetec/accounts-api/internal/core/domain"
)

// In-memory repository stubs shared by the service tests. They return clones
// so tests observe store state, not aliased pointers.

type stubUserRepo struct {
	users  map[string]*domain.User
	forced error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.forced != nil {
		return nil, r.forced
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, &domain.DuplicateValueError{Detail: "Key (email)=(" + user.Email + ") already exists."}
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	if r.forced != nil {
		return nil, r.forced
	}
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.forced != nil {
		return nil, r.forced
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.forced != nil {
		return nil, r.forced
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.forced != nil {
		return nil, r.forced
	}
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

type stubRoleRepo struct {
	roles  map[int64]*domain.Role
	nextID int64
	forced error
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[int64]*domain.Role), nextID: 1}
}

func cloneRole(role *domain.Role) *domain.Role {
	if role == nil {
		return nil
	}
	clone := *role
	return &clone
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if r.forced != nil {
		return nil, r.forced
	}
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return nil, &domain.DuplicateValueError{Detail: "Key (name)=(" + role.Name + ") already exists."}
		}
	}
	role.ID = r.nextID
	r.nextID++
	r.roles[role.ID] = cloneRole(role)
	return cloneRole(role), nil
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]domain.Role, error) {
	if r.forced != nil {
		return nil, r.forced
	}
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id int64) (*domain.Role, error) {
	if r.forced != nil {
		return nil, r.forced
	}
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return cloneRole(role), nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if r.forced != nil {
		return nil, r.forced
	}
	if _, ok := r.roles[role.ID]; !ok {
		return nil, domain.ErrRoleNotFound
	}
	r.roles[role.ID] = cloneRole(role)
	return cloneRole(role), nil
}
