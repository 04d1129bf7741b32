package impl

import (
	"context"
	"sync"

	"github.com/paulmach/orb"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"
)

// fakePreferenceRepo keeps the preference record in memory.
type fakePreferenceRepo struct {
	mu      sync.Mutex
	prefs   entity.Preferences
	loadErr error
	saveErr error
	saves   int
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{prefs: entity.DefaultPreferences()}
}

func (f *fakePreferenceRepo) Load(context.Context) (entity.Preferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return entity.DefaultPreferences(), f.loadErr
	}

	return f.prefs, nil
}

func (f *fakePreferenceRepo) Save(_ context.Context, prefs entity.Preferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.prefs = prefs
	f.saves++

	return nil
}

// fakeProductRepo serves a fixed product list and records writes.
type fakeProductRepo struct {
	products  []*entity.Product
	listErr   error
	created   []*entity.Product
	updated   []*entity.Product
	deleted   []string
	createErr error
	snapshots []repository.ProductSnapshot
}

func (f *fakeProductRepo) List(context.Context) ([]*entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.products, nil
}

func (f *fakeProductRepo) Watch(_ context.Context, fn func(repository.ProductSnapshot)) error {
	for _, snap := range f.snapshots {
		fn(snap)
	}

	return nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) (*entity.Product, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *product
	created.ID = "generated-id"
	f.created = append(f.created, &created)

	return &created, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.updated = append(f.updated, product)

	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)

	return nil
}

// fakeOrderRepo records created orders and status changes.
type fakeOrderRepo struct {
	orders    []*entity.Order
	created   []*entity.Order
	statuses  map[string]entity.OrderStatus
	deleted   []string
	createErr error
	listErr   error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{statuses: map[string]entity.OrderStatus{}}
}

func (f *fakeOrderRepo) List(context.Context) ([]*entity.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.orders, nil
}

func (f *fakeOrderRepo) Watch(_ context.Context, fn func(repository.OrderSnapshot)) error {
	fn(repository.OrderSnapshot{Orders: f.orders})

	return nil
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) (*entity.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *order
	created.ID = "order-id"
	f.created = append(f.created, &created)

	return &created, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status entity.OrderStatus) error {
	f.statuses[id] = status

	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)

	return nil
}

// fakeCredentialRepo keeps the operator credential in memory.
type fakeCredentialRepo struct {
	cred *entity.Credential
}

func (f *fakeCredentialRepo) Load(context.Context) (*entity.Credential, error) {
	return f.cred, nil
}

func (f *fakeCredentialRepo) Save(_ context.Context, cred *entity.Credential) error {
	f.cred = cred

	return nil
}

// fakePosterRepo keeps the poster record in memory.
type fakePosterRepo struct {
	poster *entity.Poster
}

func (f *fakePosterRepo) Load(context.Context) (*entity.Poster, error) {
	return f.poster, nil
}

func (f *fakePosterRepo) Save(_ context.Context, poster *entity.Poster) error {
	f.poster = poster

	return nil
}

func (f *fakePosterRepo) Delete(context.Context) error {
	f.poster = nil

	return nil
}

// fakeNotifier records emitted toasts.
type fakeNotifier struct {
	mu       sync.Mutex
	levels   []service.NotifyLevel
	messages []string
}

func (f *fakeNotifier) Notify(level service.NotifyLevel, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.levels = append(f.levels, level)
	f.messages = append(f.messages, message)
}

// fakeMessenger builds predictable links.
type fakeMessenger struct{}

func (fakeMessenger) OrderLink(message string) string { return "wa://order?" + message }
func (fakeMessenger) ContactLink() string             { return "wa://contact" }

// fakeLocator returns a fixed position or error.
type fakeLocator struct {
	point orb.Point
	err   error
}

func (f *fakeLocator) CurrentPosition(context.Context) (orb.Point, error) {
	if f.err != nil {
		return orb.Point{}, f.err
	}

	return f.point, nil
}

// fakeUploader returns a fixed hosted URL or error.
type fakeUploader struct {
	result *service.UploadResult
	err    error
}

func (f *fakeUploader) Upload(context.Context, string, string, []byte) (*service.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.result, nil
}

// fakeCatalog serves a fixed product set.
type fakeCatalog struct {
	products []*entity.Product
}

func (f *fakeCatalog) Browse(_ context.Context, _ usecase.BrowseQuery) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeCatalog) Product(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

func (f *fakeCatalog) Categories(lang entity.Language) []usecase.CategoryView { return nil }

func (f *fakeCatalog) Run(ctx context.Context) error {
	<-ctx.Done()

	return nil
}

// testHasher avoids bcrypt cost in unit tests.
type testHasher struct{}

func (testHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (testHasher) Check(password, hash string) bool { return hash == "hash:"+password }
