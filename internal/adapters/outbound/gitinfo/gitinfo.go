package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// shortHashLen matches the abbreviated form git itself prints.
const shortHashLen = 7

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(rootPath string) bool {
	_, err := git.PlainOpen(rootPath)
	return err == nil
}

// CommitHash returns the full hash of HEAD.
func (g *GitInfoAdapter) CommitHash(rootPath string) (string, error) {
	repo, err := git.PlainOpen(rootPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// ShortHash returns the abbreviated HEAD hash for display surfaces that
// do not need the full 40 characters.
func (g *GitInfoAdapter) ShortHash(rootPath string) (string, error) {
	hash, err := g.CommitHash(rootPath)
	if err != nil {
		return "", err
	}
	if len(hash) > shortHashLen {
		hash = hash[:shortHashLen]
	}
	return hash, nil
}
