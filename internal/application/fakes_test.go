package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/nasch/prestabanco_backend/internal/domain"
)

type fakeUserRepo struct {
	users     map[int64]domain.User
	nextID    int64
	saved     []domain.User
	saveErr   error
	deleteErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]domain.User{}}
}

func (r *fakeUserRepo) GetAll() ([]domain.User, error) {
	users := []domain.User{}
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) GetByID(id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByRut(rut string) (*domain.User, error) {
	users, _ := r.GetAll()
	for _, u := range users {
		if u.Rut == rut {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Save(user *domain.User) error {
	r.saved = append(r.saved, *user)
	if r.saveErr != nil {
		return r.saveErr
	}
	if user.ID == 0 {
		r.nextID++
		user.ID = r.nextID
	} else if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("usuario con ID %d no encontrado", user.ID)
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) DeleteByID(id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("usuario con ID %d no encontrado", id)
	}
	delete(r.users, id)
	return nil
}

type fakeLoanRepo struct {
	loans     map[int64]domain.Loan
	nextID    int64
	saveErr   error
	deleteErr error
	getErr    error
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: map[int64]domain.Loan{}}
}

func (r *fakeLoanRepo) GetAll() ([]domain.Loan, error) {
	loans := []domain.Loan{}
	for _, l := range r.loans {
		loans = append(loans, l)
	}
	sort.Slice(loans, func(i, j int) bool { return loans[i].ID < loans[j].ID })
	return loans, nil
}

func (r *fakeLoanRepo) GetByID(id int64) (*domain.Loan, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	l, ok := r.loans[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *fakeLoanRepo) find(match func(domain.Loan) bool) (*domain.Loan, error) {
	loans, _ := r.GetAll()
	for _, l := range loans {
		if match(l) {
			return &l, nil
		}
	}
	return nil, nil
}

func (r *fakeLoanRepo) FindByRut(rut string) (*domain.Loan, error) {
	return r.find(func(l domain.Loan) bool { return l.Rut == rut })
}

func (r *fakeLoanRepo) FindByState(state string) (*domain.Loan, error) {
	return r.find(func(l domain.Loan) bool { return l.State == state })
}

func (r *fakeLoanRepo) Save(loan *domain.Loan) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if loan.ID == 0 {
		r.nextID++
		loan.ID = r.nextID
	} else if _, ok := r.loans[loan.ID]; !ok {
		return fmt.Errorf("solicitud con ID %d no encontrada", loan.ID)
	}
	r.loans[loan.ID] = *loan
	return nil
}

func (r *fakeLoanRepo) DeleteByID(id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.loans[id]; !ok {
		return fmt.Errorf("solicitud con ID %d no encontrada", id)
	}
	delete(r.loans, id)
	return nil
}

type notification struct {
	ctx     context.Context
	loanID  int64
	created bool
}

type fakeNotifier struct {
	sent []notification
	err  error
}

func (n *fakeNotifier) NotifyLoanSaved(ctx context.Context, loan *domain.Loan, created bool) error {
	n.sent = append(n.sent, notification{ctx: ctx, loanID: loan.ID, created: created})
	return n.err
}

type upload struct {
	prefix string
	name   string
	data   []byte
}

type fakeUploader struct {
	uploads []upload
	err     error
}

func (u *fakeUploader) UploadDocument(_ context.Context, prefix, name string, data []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploads = append(u.uploads, upload{prefix: prefix, name: name, data: data})
	return "https://bucket.example/" + prefix + "/" + name, nil
}
