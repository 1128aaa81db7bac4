// internal/service/application_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/dangerclosesec/redline/internal/mocks"
	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type applicationFixture struct {
	repo     *mocks.MockApplicationRepositoryIface
	elements *mocks.MockDataElementRepositoryIface
	svc      *service.ApplicationService
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	ctrl := gomock.NewController(t)

	f := &applicationFixture{
		repo:     mocks.NewMockApplicationRepositoryIface(ctrl),
		elements: mocks.NewMockDataElementRepositoryIface(ctrl),
	}

	catalog := service.NewCatalogService(f.elements, nil)
	f.svc = service.NewApplicationService(f.repo, nil, catalog)

	return f
}

func TestApplicationClassification(t *testing.T) {
	f := newApplicationFixture(t)

	app := &model.Application{
		ID:   uuid.New(),
		Name: "billing",
		DataElements: []model.DataElement{
			{Name: "Last Name", Category: model.CategoryGlobal, Weight: 10},
			{Name: "First Name", Category: model.CategoryPersonal, Weight: 2},
			{Name: "Gender", Category: model.CategoryPersonal, Weight: 3},
		},
	}
	f.repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)

	c, err := f.svc.Classification(context.Background(), app.ID)
	require.NoError(t, err)

	assert.Equal(t, 50.0, c.DSV)
	assert.Equal(t, model.DCL2, c.Computed)
	assert.Equal(t, model.DCL2, c.Effective)
	assert.False(t, c.Overridden)
}

func TestApplicationSetOverride(t *testing.T) {
	f := newApplicationFixture(t)

	app := &model.Application{ID: uuid.New(), Name: "billing"}
	f.repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
	f.repo.EXPECT().Update(gomock.Any(), app).Return(nil)

	got, err := f.svc.SetOverride(context.Background(), app.ID, model.DCL4, "handles card data downstream")
	require.NoError(t, err)

	require.NotNil(t, got.OverrideLevel)
	assert.Equal(t, model.DCL4, *got.OverrideLevel)
	assert.Equal(t, "handles card data downstream", got.OverrideReason)
}

func TestApplicationSetOverrideRequiresReason(t *testing.T) {
	f := newApplicationFixture(t)

	// No repository expectations: the request never reaches storage.
	_, err := f.svc.SetOverride(context.Background(), uuid.New(), model.DCL4, "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverrideReasonRequired)
}

func TestApplicationSetOverrideRejectsUnknownTier(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.SetOverride(context.Background(), uuid.New(), model.ClassificationLevel(9), "because")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidClassification)
}

func TestApplicationClearOverride(t *testing.T) {
	f := newApplicationFixture(t)

	level := model.DCL3
	app := &model.Application{
		ID:             uuid.New(),
		OverrideLevel:  &level,
		OverrideReason: "legacy decision",
	}
	f.repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
	f.repo.EXPECT().Update(gomock.Any(), app).Return(nil)

	got, err := f.svc.ClearOverride(context.Background(), app.ID)
	require.NoError(t, err)

	assert.Nil(t, got.OverrideLevel)
	assert.Empty(t, got.OverrideReason)
}

func TestApplicationSetDataElements(t *testing.T) {
	f := newApplicationFixture(t)

	app := &model.Application{ID: uuid.New()}
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	elements := []model.DataElement{
		{ID: ids[0], Name: "First Name", Category: model.CategoryPersonal, Weight: 2},
		{ID: ids[1], Name: "Last Name", Category: model.CategoryGlobal, Weight: 10},
	}

	f.repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
	f.elements.EXPECT().FindByIDs(gomock.Any(), ids).Return(elements, nil)
	f.repo.EXPECT().ReplaceDataElements(gomock.Any(), app, elements).Return(nil)

	got, err := f.svc.SetDataElements(context.Background(), app.ID, ids)
	require.NoError(t, err)
	assert.Len(t, got.DataElements, 2)
}

func TestApplicationSetDataElementsUnknownID(t *testing.T) {
	f := newApplicationFixture(t)

	app := &model.Application{ID: uuid.New()}
	ids := []uuid.UUID{uuid.New()}

	f.repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
	f.elements.EXPECT().FindByIDs(gomock.Any(), ids).Return(nil, domain.ErrDataElementNotFound)

	_, err := f.svc.SetDataElements(context.Background(), app.ID, ids)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataElementNotFound)
}
