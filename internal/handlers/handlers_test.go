package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"hostel-listing-portal/internal/config"
	"hostel-listing-portal/internal/imagehost"
	"hostel-listing-portal/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBranchStore keeps branches in memory and records update patches.
type fakeBranchStore struct {
	branches    map[int]*models.Branch
	nextID      int
	lastUpdates map[string]interface{}
}

func newFakeBranchStore() *fakeBranchStore {
	return &fakeBranchStore{branches: make(map[int]*models.Branch), nextID: 1}
}

func (s *fakeBranchStore) CreateBranch(b *models.Branch) error {
	b.ID = s.nextID
	s.nextID++
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	copied := *b
	s.branches[b.ID] = &copied
	return nil
}

func (s *fakeBranchStore) ListBranches() ([]models.Branch, error) {
	out := make([]models.Branch, 0, len(s.branches))
	for id := 1; id < s.nextID; id++ {
		if b, ok := s.branches[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBranchStore) GetBranch(id int) (*models.Branch, error) {
	b, ok := s.branches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (s *fakeBranchStore) GetBranchByName(name string) (*models.Branch, error) {
	for id := 1; id < s.nextID; id++ {
		if b, ok := s.branches[id]; ok && b.Name == name {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeBranchStore) UpdateBranch(id int, fields map[string]interface{}) (*models.Branch, error) {
	b, ok := s.branches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.lastUpdates = fields
	if v, ok := fields["address"]; ok {
		b.Address = v.(string)
	}
	if v, ok := fields["name"]; ok {
		b.Name = v.(string)
	}
	if v, ok := fields["reg_fee"]; ok {
		b.RegFee = v.(int)
	}
	b.UpdatedAt = b.UpdatedAt.Add(time.Millisecond)
	return b, nil
}

func (s *fakeBranchStore) DeleteBranch(id int) (*models.Branch, error) {
	b, ok := s.branches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(s.branches, id)
	return b, nil
}

// fakeGalleryStore keeps gallery rows in memory and records update patches.
type fakeGalleryStore struct {
	images      map[int]*models.GalleryImage
	nextID      int
	lastUpdates map[string]interface{}
}

func newFakeGalleryStore() *fakeGalleryStore {
	return &fakeGalleryStore{images: make(map[int]*models.GalleryImage), nextID: 1}
}

func (s *fakeGalleryStore) CreateGalleryImage(g *models.GalleryImage) error {
	g.ID = s.nextID
	s.nextID++
	g.CreatedAt = time.Now()
	copied := *g
	s.images[g.ID] = &copied
	return nil
}

func (s *fakeGalleryStore) ListGalleryImages(branchID *int) ([]models.GalleryImage, error) {
	out := make([]models.GalleryImage, 0)
	for id := 1; id < s.nextID; id++ {
		g, ok := s.images[id]
		if !ok {
			continue
		}
		if branchID != nil && g.BranchID != *branchID {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (s *fakeGalleryStore) ListBranchGallery(branchID int) ([]models.GalleryImage, error) {
	return s.ListGalleryImages(&branchID)
}

func (s *fakeGalleryStore) GetGalleryImage(id int) (*models.GalleryImage, error) {
	g, ok := s.images[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (s *fakeGalleryStore) UpdateGalleryImage(id int, fields map[string]interface{}) (*models.GalleryImage, error) {
	g, ok := s.images[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.lastUpdates = fields
	s.apply(g, fields)
	return g, nil
}

func (s *fakeGalleryStore) UpdateBranchGalleryImage(branchID, imageID int, fields map[string]interface{}) (*models.GalleryImage, error) {
	g, ok := s.images[imageID]
	if !ok || g.BranchID != branchID {
		return nil, gorm.ErrRecordNotFound
	}
	s.lastUpdates = fields
	s.apply(g, fields)
	return g, nil
}

func (s *fakeGalleryStore) apply(g *models.GalleryImage, fields map[string]interface{}) {
	if v, ok := fields["title"]; ok {
		g.Title = v.(string)
	}
	if v, ok := fields["branch_id"]; ok {
		g.BranchID = v.(int)
	}
}

func (s *fakeGalleryStore) DeleteGalleryImage(id int) (*models.GalleryImage, error) {
	g, ok := s.images[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(s.images, id)
	return g, nil
}

func (s *fakeGalleryStore) DeleteBranchGalleryImage(branchID, imageID int) (*models.GalleryImage, error) {
	g, ok := s.images[imageID]
	if !ok || g.BranchID != branchID {
		return nil, gorm.ErrRecordNotFound
	}
	delete(s.images, imageID)
	return g, nil
}

func (s *fakeGalleryStore) DeleteBranchGallery(branchID int) (int64, error) {
	var count int64
	for id, g := range s.images {
		if g.BranchID == branchID {
			delete(s.images, id)
			count++
		}
	}
	return count, nil
}

// fakeEnquiryStore keeps enquiries in memory and records list filters.
type fakeEnquiryStore struct {
	enquiries    map[int]*models.UserEnquiry
	nextID       int
	lastBranchID *int
	lastSource   string
	lastUpdates  map[string]interface{}
}

func newFakeEnquiryStore() *fakeEnquiryStore {
	return &fakeEnquiryStore{enquiries: make(map[int]*models.UserEnquiry), nextID: 1}
}

func (s *fakeEnquiryStore) CreateEnquiry(e *models.UserEnquiry) error {
	e.ID = s.nextID
	s.nextID++
	e.CreatedAt = time.Now()
	copied := *e
	s.enquiries[e.ID] = &copied
	return nil
}

func (s *fakeEnquiryStore) ListEnquiries(branchID *int, source string) ([]models.UserEnquiry, error) {
	s.lastBranchID = branchID
	s.lastSource = source
	out := make([]models.UserEnquiry, 0)
	for id := 1; id < s.nextID; id++ {
		e, ok := s.enquiries[id]
		if !ok {
			continue
		}
		if branchID != nil && (e.BranchID == nil || *e.BranchID != *branchID) {
			continue
		}
		if source != "" && e.Source != source {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (s *fakeEnquiryStore) GetEnquiry(id int) (*models.UserEnquiry, error) {
	e, ok := s.enquiries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (s *fakeEnquiryStore) UpdateEnquiry(id int, fields map[string]interface{}) (*models.UserEnquiry, error) {
	e, ok := s.enquiries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.lastUpdates = fields
	if v, ok := fields["message"]; ok {
		e.Message = v.(string)
	}
	if v, ok := fields["branch_id"]; ok {
		e.BranchID = v.(*int)
	}
	return e, nil
}

func (s *fakeEnquiryStore) DeleteEnquiry(id int) (*models.UserEnquiry, error) {
	e, ok := s.enquiries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(s.enquiries, id)
	return e, nil
}

// fakeHost records uploads/deletes and returns canned results.
type fakeHost struct {
	uploads   int
	deletes   []string
	result    *imagehost.UploadResult
	uploadErr error
	deleteErr error
}

func (f *fakeHost) Upload(ctx context.Context, r io.Reader, size int64, opts imagehost.UploadOptions) (*imagehost.UploadResult, error) {
	f.uploads++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if f.result != nil {
		return f.result, nil
	}
	return &imagehost.UploadResult{URL: "https://img.example.com/x.jpg", DeleteHandle: "x.jpg"}, nil
}

func (f *fakeHost) Delete(ctx context.Context, ref string) error {
	f.deletes = append(f.deletes, ref)
	return f.deleteErr
}

type testEnv struct {
	router    *gin.Engine
	branches  *fakeBranchStore
	gallery   *fakeGalleryStore
	enquiries *fakeEnquiryStore
	host      *fakeHost
}

func newTestEnv(host imagehost.Host) *testEnv {
	env := &testEnv{
		branches:  newFakeBranchStore(),
		gallery:   newFakeGalleryStore(),
		enquiries: newFakeEnquiryStore(),
	}
	if fh, ok := host.(*fakeHost); ok {
		env.host = fh
	}
	env.router = NewRouter(RouterConfig{
		Server: config.ServerConfig{
			Environment:    "development",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Branches:  env.branches,
		Gallery:   env.gallery,
		Enquiries: env.enquiries,
		Images:    host,
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int64          `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, w.Body.String())
	}
	return env
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d (body: %s)", want, w.Code, w.Body.String())
	}
}
