package chatbot

import (
	"strings"
	"testing"
)

func TestReply_KeywordGroups(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		fragment string
	}{
		{"experience", "Tell me about his experience", "Data Scientist Intern"},
		{"work", "where did he work?", "Data Scientist Intern"},
		{"skills", "what skills does he have", "expertise spans"},
		{"projects", "show me a project", "impressive projects"},
		{"education", "what did he study", "University at Buffalo"},
		{"contact", "how do I reach him", "sharanreddy.adla@gmail.com"},
		{"greeting", "hello there", "AI assistant"},
		{"publication", "any research papers?", "ICOTET 2024 conference"},
		{"certification", "does he hold a certificate", "Cognizant AI Virtual Experience"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Reply(tc.message)
			if !strings.Contains(got, tc.fragment) {
				t.Errorf("Reply(%q) = %q, expected it to contain %q", tc.message, got, tc.fragment)
			}
		})
	}
}

func TestReply_FirstMatchWins(t *testing.T) {
	// "experience" is listed before "skill"; a message containing both gets
	// the experience reply.
	got := Reply("tell me about his experience and skill set")
	if !strings.Contains(got, "Data Scientist Intern") {
		t.Errorf("expected the experience reply, got %q", got)
	}
}

func TestReply_CaseInsensitive(t *testing.T) {
	if Reply("HELLO") != Reply("hello") {
		t.Error("matching must be case-insensitive")
	}
}

func TestReply_Fallback(t *testing.T) {
	got := Reply("what is the weather today")
	if got != Fallback {
		t.Errorf("expected fallback reply, got %q", got)
	}
}

func TestReply_EmptyMessageFallsBack(t *testing.T) {
	if Reply("") != Fallback {
		t.Error("empty message must return the fallback reply")
	}
}
