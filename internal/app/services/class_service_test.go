package services

import (
	"context"
	"testing"

	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/app/models/dto"
	"github.com/ndthanh/studentms/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClassStore is an in-memory ClassStore keyed by class ID.
type fakeClassStore struct {
	byID   map[int64]*models.Class
	nextID int64
	inUse  map[int64]bool
}

func newFakeClassStore(classes ...*models.Class) *fakeClassStore {
	store := &fakeClassStore{byID: make(map[int64]*models.Class), inUse: make(map[int64]bool)}
	for _, c := range classes {
		store.byID[c.ID] = c
		if c.ID > store.nextID {
			store.nextID = c.ID
		}
	}
	return store
}

func (f *fakeClassStore) Create(_ context.Context, class *models.Class) error {
	for _, c := range f.byID {
		if c.Name == class.Name {
			return apperrors.ErrDuplicateClassName
		}
	}
	f.nextID++
	class.ID = f.nextID
	f.byID[class.ID] = class
	return nil
}

func (f *fakeClassStore) GetByID(_ context.Context, id int64) (*models.Class, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	return c, nil
}

func (f *fakeClassStore) GetAll(_ context.Context) ([]*models.Class, error) {
	classes := make([]*models.Class, 0, len(f.byID))
	for _, c := range f.byID {
		classes = append(classes, c)
	}
	return classes, nil
}

func (f *fakeClassStore) Update(_ context.Context, id int64, req *dto.UpdateClassRequest) error {
	c, ok := f.byID[id]
	if !ok {
		return apperrors.ErrClassNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	return nil
}

func (f *fakeClassStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrClassNotFound
	}
	if f.inUse[id] {
		return apperrors.ErrClassInUse
	}
	delete(f.byID, id)
	return nil
}

func TestCreateClass(t *testing.T) {
	svc := NewClassService(newFakeClassStore())

	class, err := svc.CreateClass(context.Background(), &dto.CreateClassRequest{Name: "CS-2024"})
	require.NoError(t, err)
	assert.NotZero(t, class.ID)
	assert.Equal(t, "CS-2024", class.Name)
}

func TestCreateClass_DuplicateName(t *testing.T) {
	svc := NewClassService(newFakeClassStore(&models.Class{ID: 1, Name: "CS-2024"}))

	_, err := svc.CreateClass(context.Background(), &dto.CreateClassRequest{Name: "CS-2024"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateClassName)
}

func TestUpdateClass_ReturnsFreshRecord(t *testing.T) {
	svc := NewClassService(newFakeClassStore(&models.Class{ID: 1, Name: "Old"}))

	newName := "New"
	class, err := svc.UpdateClass(context.Background(), 1, &dto.UpdateClassRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New", class.Name)
}

func TestUpdateClass_NotFound(t *testing.T) {
	svc := NewClassService(newFakeClassStore())

	name := "Anything"
	_, err := svc.UpdateClass(context.Background(), 99, &dto.UpdateClassRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}

func TestDeleteClass_InUse(t *testing.T) {
	store := newFakeClassStore(&models.Class{ID: 1, Name: "CS-2024"})
	store.inUse[1] = true
	svc := NewClassService(store)

	assert.ErrorIs(t, svc.DeleteClass(context.Background(), 1), apperrors.ErrClassInUse)
}

func TestDeleteClass(t *testing.T) {
	svc := NewClassService(newFakeClassStore(&models.Class{ID: 1, Name: "CS-2024"}))

	require.NoError(t, svc.DeleteClass(context.Background(), 1))
	_, err := svc.GetClassByID(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}
