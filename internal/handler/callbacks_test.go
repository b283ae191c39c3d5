package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"

	"acronymer/internal/domain"
	"acronymer/internal/i18n"
	"acronymer/internal/service"
	"acronymer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// fakeTelegram answers Bot API calls and records their method names
type fakeTelegram struct {
	mu      sync.Mutex
	methods []string
	editErr string
}

func (f *fakeTelegram) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := path.Base(r.URL.Path)

	f.mu.Lock()
	f.methods = append(f.methods, method)
	editErr := f.editErr
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case method == "editMessageText" && editErr != "":
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"` + editErr + `"}`))
	case method == "editMessageText", method == "sendMessage":
		w.Write([]byte(`{"ok":true,"result":{"message_id":10,"date":0,"chat":{"id":42,"type":"private"}}}`))
	default:
		w.Write([]byte(`{"ok":true,"result":true}`))
	}
}

func (f *fakeTelegram) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.methods...)
}

func newTestBot(t *testing.T, api *fakeTelegram) *tele.Bot {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	bot, err := tele.NewBot(tele.Settings{
		URL:     server.URL,
		Token:   "test-token",
		Offline: true,
	})
	require.NoError(t, err)
	return bot
}

func newTestTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	translator, err := i18n.NewTranslator("en", testutil.NewTestLogger())
	require.NoError(t, err)
	return translator
}

func voteContext(bot *tele.Bot, data string) tele.Context {
	return bot.NewContext(tele.Update{Callback: &tele.Callback{
		ID:   "cb1",
		Data: data,
		Message: &tele.Message{
			ID:   10,
			Chat: &tele.Chat{ID: 42, Type: tele.ChatPrivate},
		},
		Sender: &tele.User{ID: 7},
	}})
}

func TestCleanCallbackData(t *testing.T) {
	const id = "3f1c9a52-8a0e-4c6e-9d1b-2a7f4e5b6c7d"

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "acronym id",
			input:    id,
			expected: id,
		},
		{
			name:     "id with surrounding whitespace",
			input:    "  " + id + "\n",
			expected: id,
		},
		{
			name:     "id with control bytes",
			input:    id + "\x00\x01",
			expected: id,
		},
		{
			name:     "id split by tab",
			input:    "3f1c9a52\t-8a0e-4c6e-9d1b-2a7f4e5b6c7d",
			expected: id,
		},
		{
			name:     "empty data",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestVoteMarkup_CarriesAcronymID(t *testing.T) {
	markup := voteMarkup("a1")

	require.Len(t, markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	require.Len(t, row, 2)
	assert.Equal(t, "like", row[0].Unique)
	assert.Equal(t, "a1", row[0].Data)
	assert.Equal(t, "dislike", row[1].Unique)
	assert.Equal(t, "a1", row[1].Data)
}

func TestHandler_HandleEditError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedErr bool
	}{
		{
			name: "no error",
			err:  nil,
		},
		{
			name: "same content is acknowledged",
			err:  tele.ErrSameMessageContent,
		},
		{
			name:        "other errors are returned",
			err:         errors.New("telegram: message to edit not found (400)"),
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeTelegram{}
			bot := newTestBot(t, api)
			h := NewHandler(bot, nil, nil, testutil.NewTestLogger())

			err := h.handleEditError(tt.err, voteContext(bot, "a1"))

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.err != nil {
				assert.Equal(t, []string{"answerCallbackQuery"}, api.called())
			} else {
				assert.Empty(t, api.called())
			}
		})
	}
}

func TestHandler_HandleVote(t *testing.T) {
	voted := testutil.NewTestAcronym("a1", "API", "Application Programming Interface", "tech")
	voted.Likes = 1

	tests := []struct {
		name            string
		data            string
		vote            domain.Vote
		setupMock       func(*testutil.MockAcronymRepository)
		editErr         string
		expectedMethods []string
	}{
		{
			name: "like redraws card",
			data: " a1\x00",
			vote: domain.VoteLike,
			setupMock: func(m *testutil.MockAcronymRepository) {
				m.On("Vote", mock.Anything, "a1", domain.VoteLike).Return(voted, nil)
			},
			expectedMethods: []string{"editMessageText", "answerCallbackQuery"},
		},
		{
			name: "unchanged card is only acknowledged",
			data: "a1",
			vote: domain.VoteDislike,
			setupMock: func(m *testutil.MockAcronymRepository) {
				m.On("Vote", mock.Anything, "a1", domain.VoteDislike).Return(voted, nil)
			},
			editErr:         "Bad Request: message is not modified",
			expectedMethods: []string{"editMessageText", "answerCallbackQuery"},
		},
		{
			name: "unknown acronym answers with error",
			data: "missing",
			vote: domain.VoteLike,
			setupMock: func(m *testutil.MockAcronymRepository) {
				m.On("Vote", mock.Anything, "missing", domain.VoteLike).Return(nil, domain.ErrNotFound)
			},
			expectedMethods: []string{"answerCallbackQuery"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(testutil.MockAcronymRepository)
			tt.setupMock(repo)
			logger := testutil.NewTestLogger()

			api := &fakeTelegram{editErr: tt.editErr}
			bot := newTestBot(t, api)
			translator := newTestTranslator(t)
			h := NewHandler(bot, service.NewAcronymService(repo, nil, nil, logger), translator, logger)

			err := h.handleVote(voteContext(bot, tt.data), tt.vote)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMethods, api.called())
			repo.AssertExpectations(t)
		})
	}
}
