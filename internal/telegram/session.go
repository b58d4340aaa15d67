package telegram

import "sync"

type mode int

const (
	modeTranslate mode = iota
	modeClone
)

// session is per-chat state: what the next voice message means, which
// cloned voice to speak with and which language to translate into.
type session struct {
	Mode       mode
	VoiceID    string
	VoiceName  string
	CloneName  string
	TargetLang string
}

type sessionStore struct {
	mu          sync.Mutex
	sessions    map[int64]*session
	defaultLang string
}

func newSessionStore(defaultLang string) *sessionStore {
	return &sessionStore{
		sessions:    make(map[int64]*session),
		defaultLang: defaultLang,
	}
}

func (s *sessionStore) get(chatID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &session{TargetLang: s.defaultLang}
		s.sessions[chatID] = sess
	}
	return sess
}
