package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AgentStore persists the agent identity under the data dir so the inventory
// service sees the same agent across restarts.
type AgentStore struct {
	idPath string
}

func NewAgentStore(dataDir string) *AgentStore {
	return &AgentStore{idPath: filepath.Join(dataDir, "agent_id")}
}

// AgentID returns the stored agent ID, generating and persisting a new one
// on first run. A corrupt file is replaced rather than failing startup.
func (s *AgentStore) AgentID(_ context.Context) (string, error) {
	if data, err := os.ReadFile(s.idPath); err == nil {
		if id, err := uuid.Parse(strings.TrimSpace(string(data))); err == nil {
			return id.String(), nil
		}
	}

	newID := uuid.New()
	if err := os.MkdirAll(filepath.Dir(s.idPath), 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.idPath, []byte(newID.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("persist agent id: %w", err)
	}
	return newID.String(), nil
}
