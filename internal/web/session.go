package web

import (
	"sync"

	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/models"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// session holds the state of one extraction run: the result table being
// edited and, for upload runs, the open workbook so the user can switch
// to another sheet or column without re-uploading. Manual runs keep no
// workbook.
type session struct {
	mu       sync.Mutex
	table    *models.Table
	workbook *excelize.File
	manual   bool
}

// sessionStore keeps in-memory sessions for the lifetime of the process.
// Nothing is persisted; a new extraction run gets a fresh session and the
// old one is simply abandoned.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (s *sessionStore) put(sess *session) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	return sess, ok
}
