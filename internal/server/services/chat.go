package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sharandeepreddy/pf/internal/common"
	"github.com/sharandeepreddy/pf/internal/server/chatbot"
	"github.com/sharandeepreddy/pf/internal/server/models"
	"github.com/sharandeepreddy/pf/internal/server/repositories/repomanager"
)

// ChatService selects canned replies and records every turn under its
// session token. A session is created implicitly on the first turn without
// a token and never expires; it lives as long as the client remembers the
// token.
type ChatService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewChatService constructs a ChatService.
func NewChatService(db *sql.DB, m repomanager.RepositoryManager) *ChatService {
	return &ChatService{db: db, repomanager: m}
}

// newSessionID is a seam for testing token generation.
var newSessionID = uuid.NewString

// Respond validates the message, picks the canned reply, persists the turn,
// and returns the reply with the session token (freshly generated when the
// caller supplied none).
func (s *ChatService) Respond(ctx context.Context, message, sessionID string, client models.ClientInfo) (reply, session string, err error) {
	if message == "" {
		return "", "", common.NewValidationError("Message is required")
	}

	if sessionID == "" {
		sessionID = newSessionID()
	}

	reply = chatbot.Reply(message)

	turn := &models.ChatTurn{
		SessionID:   sessionID,
		UserMessage: message,
		BotResponse: reply,
		IPAddress:   client.IPAddress,
		UserAgent:   client.UserAgent,
	}

	repo := s.repomanager.Chats(s.db)
	if err := repo.Create(ctx, turn); err != nil {
		return "", "", fmt.Errorf("error creating chat turn: %w", err)
	}

	return reply, sessionID, nil
}
