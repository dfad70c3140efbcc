package services

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory store fakes. They mirror the repository contracts closely enough
// for service-level tests: sentinel errors, id assignment, move semantics.

func stamp(m *models.BaseModel) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()
}

// --- postings ---

type fakePostingStore struct {
	mu       sync.Mutex
	postings map[string]models.Posting
}

func newFakePostingStore() *fakePostingStore {
	return &fakePostingStore{postings: make(map[string]models.Posting)}
}

func (f *fakePostingStore) Create(p *models.Posting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stamp(&p.BaseModel)
	f.postings[p.ID] = *p
	return nil
}

func (f *fakePostingStore) FindByID(id string) (*models.Posting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.postings[id]
	if !ok {
		return nil, repositories.ErrPostingNotFound
	}
	return &p, nil
}

func (f *fakePostingStore) Update(p *models.Posting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.postings[p.ID]; !ok {
		return repositories.ErrPostingNotFound
	}
	f.postings[p.ID] = *p
	return nil
}

func (f *fakePostingStore) List(filter repositories.PostingFilter) ([]models.Posting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Posting
	for _, p := range f.postings {
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.VisibleOnly && !p.Visible() {
			continue
		}
		if !matchesEquals(p, filter.Equals) {
			continue
		}
		out = append(out, p)
	}

	if filter.Type == models.PostingTypeJob {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out, nil
}

func matchesEquals(p models.Posting, equals map[string]interface{}) bool {
	for field, value := range equals {
		var got interface{}
		switch field {
		case "status":
			got = string(p.Status)
			if s, ok := value.(models.PostingStatus); ok {
				value = string(s)
			}
		case "is_active":
			got = p.IsActive
		case "is_approved":
			got = p.IsApproved
		case "company":
			got = p.Company
		case "industry":
			got = p.Industry
		case "location":
			got = p.Location
		case "posted_by":
			got = p.PostedBy
		case "title":
			got = p.Title
		default:
			continue
		}
		if got != value {
			return false
		}
	}
	return true
}

func (f *fakePostingStore) MoveToArchive(p *models.Posting, a *models.ArchivedPosting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stamp(&a.BaseModel)
	delete(f.postings, p.ID)
	return nil
}

func (f *fakePostingStore) RestoreFromArchive(a *models.ArchivedPosting, p *models.Posting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stamp(&p.BaseModel)
	f.postings[p.ID] = *p
	return nil
}

// --- archive ---

type fakeArchiveStore struct {
	mu       sync.Mutex
	archived map[string]models.ArchivedPosting
}

func newFakeArchiveStore() *fakeArchiveStore {
	return &fakeArchiveStore{archived: make(map[string]models.ArchivedPosting)}
}

func (f *fakeArchiveStore) put(a models.ArchivedPosting) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.archived[a.ID] = a
}

func (f *fakeArchiveStore) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.archived, id)
}

func (f *fakeArchiveStore) FindByID(id string) (*models.ArchivedPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.archived[id]
	if !ok {
		return nil, repositories.ErrArchiveNotFound
	}
	return &a, nil
}

func (f *fakeArchiveStore) List(postingType models.PostingType) ([]models.ArchivedPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ArchivedPosting
	for _, a := range f.archived {
		if postingType != "" && a.Type != postingType {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeArchiveStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.archived[id]; !ok {
		return repositories.ErrArchiveNotFound
	}
	delete(f.archived, id)
	return nil
}

// fakePostingStores wires the posting and archive fakes together so a move
// lands in the archive the way the transactional repository does.
type fakePostingStores struct {
	*fakePostingStore
	archive *fakeArchiveStore
}

func newFakePostingStores() *fakePostingStores {
	return &fakePostingStores{
		fakePostingStore: newFakePostingStore(),
		archive:          newFakeArchiveStore(),
	}
}

func (f *fakePostingStores) MoveToArchive(p *models.Posting, a *models.ArchivedPosting) error {
	if err := f.fakePostingStore.MoveToArchive(p, a); err != nil {
		return err
	}
	f.archive.put(*a)
	return nil
}

func (f *fakePostingStores) RestoreFromArchive(a *models.ArchivedPosting, p *models.Posting) error {
	if err := f.fakePostingStore.RestoreFromArchive(a, p); err != nil {
		return err
	}
	f.archive.remove(a.ID)
	return nil
}

// --- cvs ---

type fakeCVStore struct {
	mu  sync.Mutex
	cvs map[string]models.CV
}

func newFakeCVStore() *fakeCVStore {
	return &fakeCVStore{cvs: make(map[string]models.CV)}
}

func (f *fakeCVStore) Create(cv *models.CV) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stamp(&cv.BaseModel)
	f.cvs[cv.ID] = *cv
	return nil
}

func (f *fakeCVStore) FindByID(id string) (*models.CV, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cv, ok := f.cvs[id]
	if !ok {
		return nil, repositories.ErrCVNotFound
	}
	return &cv, nil
}

func (f *fakeCVStore) FindByEmail(email string) ([]models.CV, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.CV
	for _, cv := range f.cvs {
		if cv.Email == email {
			out = append(out, cv)
		}
	}
	return out, nil
}

func (f *fakeCVStore) Update(cv *models.CV) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cvs[cv.ID]; !ok {
		return repositories.ErrCVNotFound
	}
	f.cvs[cv.ID] = *cv
	return nil
}

func (f *fakeCVStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cvs[id]; !ok {
		return repositories.ErrCVNotFound
	}
	delete(f.cvs, id)
	return nil
}

func (f *fakeCVStore) List(equals map[string]interface{}) ([]models.CV, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.CV
	for _, cv := range f.cvs {
		if v, ok := equals["section"]; ok && cv.Section != v {
			continue
		}
		if v, ok := equals["email"]; ok && cv.Email != v {
			continue
		}
		if v, ok := equals["title"]; ok && cv.Title != v {
			continue
		}
		out = append(out, cv)
	}
	return out, nil
}

// --- sessions ---

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]models.Session)}
}

func (f *fakeSessionStore) Create(session *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.SessionID] = *session
	return nil
}

func (f *fakeSessionStore) FindByToken(token string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok {
		return nil, repositories.ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessionStore) Delete(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

// --- users ---

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	stamp(&user.BaseModel)
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) FindByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserStore) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

// --- whitelist ---

type fakeWhitelistStore struct {
	mu      sync.Mutex
	entries map[string]models.WhitelistEntry // by email
}

func newFakeWhitelistStore() *fakeWhitelistStore {
	return &fakeWhitelistStore{entries: make(map[string]models.WhitelistEntry)}
}

func (f *fakeWhitelistStore) Create(entry *models.WhitelistEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[entry.Email]; ok {
		return repositories.ErrWhitelistEntryExists
	}
	stamp(&entry.BaseModel)
	f.entries[entry.Email] = *entry
	return nil
}

func (f *fakeWhitelistStore) FindByEmail(email string) (*models.WhitelistEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[email]
	if !ok {
		return nil, repositories.ErrWhitelistEntryNotFound
	}
	return &e, nil
}

func (f *fakeWhitelistStore) Update(entry *models.WhitelistEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[entry.Email] = *entry
	return nil
}

func (f *fakeWhitelistStore) Delete(email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[email]; !ok {
		return repositories.ErrWhitelistEntryNotFound
	}
	delete(f.entries, email)
	return nil
}

func (f *fakeWhitelistStore) List() ([]models.WhitelistEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.WhitelistEntry
	for _, e := range f.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

// --- applications ---

type fakeApplicationStore struct {
	mu   sync.Mutex
	apps map[string]models.Application
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[string]models.Application)}
}

func (f *fakeApplicationStore) Create(app *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stamp(&app.BaseModel)
	f.apps[app.ID] = *app
	return nil
}

func (f *fakeApplicationStore) FindByID(id string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return &a, nil
}

func (f *fakeApplicationStore) Update(app *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apps[app.ID] = *app
	return nil
}

func (f *fakeApplicationStore) ListByJob(jobID string) ([]models.Application, error) {
	return f.filter(func(a models.Application) bool {
		return a.JobID != nil && *a.JobID == jobID
	}), nil
}

func (f *fakeApplicationStore) ListByInternship(internshipID string) ([]models.Application, error) {
	return f.filter(func(a models.Application) bool {
		return a.InternshipID != nil && *a.InternshipID == internshipID
	}), nil
}

func (f *fakeApplicationStore) ListByEmail(email string) ([]models.Application, error) {
	return f.filter(func(a models.Application) bool {
		return a.ApplicantEmail == email
	}), nil
}

func (f *fakeApplicationStore) filter(keep func(models.Application) bool) []models.Application {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, a := range f.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// --- uploads ---

type fakeUploadStore struct {
	mu      sync.Mutex
	uploads map[string]models.Upload
}

func newFakeUploadStore() *fakeUploadStore {
	return &fakeUploadStore{uploads: make(map[string]models.Upload)}
}

func (f *fakeUploadStore) Create(upload *models.Upload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stamp(&upload.BaseModel)
	f.uploads[upload.ID] = *upload
	return nil
}

func (f *fakeUploadStore) FindByID(id string) (*models.Upload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.uploads[id]
	if !ok {
		return nil, repositories.ErrUploadNotFound
	}
	return &u, nil
}

func (f *fakeUploadStore) Update(upload *models.Upload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads[upload.ID] = *upload
	return nil
}

func (f *fakeUploadStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.uploads, id)
	return nil
}

type fakeFileHashStore struct {
	mu     sync.Mutex
	hashes map[string]models.FileHash
}

func newFakeFileHashStore() *fakeFileHashStore {
	return &fakeFileHashStore{hashes: make(map[string]models.FileHash)}
}

func (f *fakeFileHashStore) Find(hash string) (*models.FileHash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fh, ok := f.hashes[hash]
	if !ok {
		return nil, repositories.ErrFileHashNotFound
	}
	return &fh, nil
}

func (f *fakeFileHashStore) Create(fh *models.FileHash) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hashes[fh.Hash] = *fh
	return nil
}

func (f *fakeFileHashStore) DeleteByCV(cvID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for hash, fh := range f.hashes {
		if fh.CVID == cvID {
			delete(f.hashes, hash)
		}
	}
	return nil
}

// --- storage ---

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, io.EOF
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStorage) SignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	return "https://blobs.test/put/" + key, nil
}

func (f *fakeStorage) SignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://blobs.test/get/" + key, nil
}

func (f *fakeStorage) putObject(key string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
}

// --- notifier ---

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingNotifier) NotifyModeration(event string, posting *models.Posting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingNotifier) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}
