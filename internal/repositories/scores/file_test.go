package scores

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerchief/duelbot/internal/models"
	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	path string
	repo Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "scores.json")

	repo, err := NewFile(&FileConfig{
		Path: s.path,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestLoadMissingFileReturnsEmptySnapshot() {
	output, err := s.repo.Load(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(output.Snapshot)
	s.Empty(output.Snapshot)
}

func (s *FileRepositoryTestSuite) TestSaveAndLoadRoundTrip() {
	snapshot := models.ScoreSnapshot{
		"guild-1": {
			"user-1": {
				Username:    "Player One",
				Points:      25,
				Wins:        3,
				Losses:      1,
				Ties:        1,
				GamesPlayed: 5,
			},
			"user-2": {
				Username:    "Player Two",
				Points:      -7,
				Wins:        0,
				Losses:      2,
				Ties:        0,
				GamesPlayed: 2,
			},
		},
		"guild-2": {
			"user-1": {
				Username:    "Player One",
				Points:      10,
				Wins:        1,
				GamesPlayed: 1,
			},
		},
	}

	err := s.repo.Save(context.Background(), &SaveInput{
		Snapshot: snapshot,
	})
	s.Require().NoError(err)

	output, err := s.repo.Load(context.Background())
	s.Require().NoError(err)
	s.Equal(snapshot, output.Snapshot)
}

func (s *FileRepositoryTestSuite) TestSaveOverwritesPreviousSnapshot() {
	first := models.ScoreSnapshot{
		"guild-1": {"user-1": {Username: "Player One", Points: 10, Wins: 1, GamesPlayed: 1}},
	}
	second := models.ScoreSnapshot{
		"guild-1": {"user-2": {Username: "Player Two", Points: 10, Wins: 1, GamesPlayed: 1}},
	}

	s.Require().NoError(s.repo.Save(context.Background(), &SaveInput{Snapshot: first}))
	s.Require().NoError(s.repo.Save(context.Background(), &SaveInput{Snapshot: second}))

	output, err := s.repo.Load(context.Background())
	s.Require().NoError(err)
	s.Equal(second, output.Snapshot)
}

func (s *FileRepositoryTestSuite) TestLoadCorruptFileResetsToEmpty() {
	err := os.WriteFile(s.path, []byte("{not json"), 0o644)
	s.Require().NoError(err)

	output, err := s.repo.Load(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(output.Snapshot)
	s.Empty(output.Snapshot)
}

func (s *FileRepositoryTestSuite) TestSaveNilSnapshotFails() {
	s.Error(s.repo.Save(context.Background(), &SaveInput{Snapshot: nil}))
}
