package registry

import (
	"sync"
	"testing"

	"github.com/kerchief/duelbot/internal/models"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *Registry
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = New()
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) createTestPair() {
	err := s.registry.CreatePair(&CreatePairInput{
		ChallengerID:   "challenger-id",
		ChallengerName: "Challenger",
		OpponentID:     "opponent-id",
		OpponentName:   "Opponent",
		ChannelID:      "channel-id",
		GuildID:        "guild-id",
	})
	s.Require().NoError(err)
}

func (s *RegistryTestSuite) TestCreatePairInsertsMirroredRecords() {
	s.createTestPair()

	challenger, ok := s.registry.Get("challenger-id")
	s.Require().True(ok)
	s.Equal("Challenger", challenger.Username)
	s.Equal("opponent-id", challenger.OpponentID)
	s.True(challenger.IsChallenger)
	s.Equal(models.ChallengeStatePendingAcceptance, challenger.State)
	s.Equal("channel-id", challenger.ChannelID)
	s.Equal("guild-id", challenger.GuildID)

	opponent, ok := s.registry.Get("opponent-id")
	s.Require().True(ok)
	s.Equal("challenger-id", opponent.OpponentID)
	s.False(opponent.IsChallenger)
	s.Equal(models.ChallengeStatePendingAcceptance, opponent.State)
}

func (s *RegistryTestSuite) TestCreatePairRejectsEngagedChallenger() {
	s.createTestPair()

	err := s.registry.CreatePair(&CreatePairInput{
		ChallengerID: "challenger-id",
		OpponentID:   "third-user",
		ChannelID:    "channel-id",
		GuildID:      "guild-id",
	})
	s.Require().ErrorIs(err, ErrAlreadyEngaged)

	// The failed attempt must not leave a record for the third user
	_, ok := s.registry.Get("third-user")
	s.False(ok)
}

func (s *RegistryTestSuite) TestCreatePairRejectsEngagedOpponent() {
	s.createTestPair()

	err := s.registry.CreatePair(&CreatePairInput{
		ChallengerID: "third-user",
		OpponentID:   "opponent-id",
		ChannelID:    "channel-id",
		GuildID:      "guild-id",
	})
	s.Require().ErrorIs(err, ErrAlreadyEngaged)

	_, ok := s.registry.Get("third-user")
	s.False(ok)
}

func (s *RegistryTestSuite) TestConcurrentChallengesAgainstSameTarget() {
	// Many challengers race for the same opponent; exactly one pair may win.
	const challengers = 32

	var wg sync.WaitGroup
	results := make(chan error, challengers)

	for i := 0; i < challengers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			results <- s.registry.CreatePair(&CreatePairInput{
				ChallengerID: string(rune('a'+id%26)) + "-challenger",
				OpponentID:   "contested-opponent",
				ChannelID:    "channel-id",
				GuildID:      "guild-id",
			})
		}(i)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			s.Require().ErrorIs(err, ErrAlreadyEngaged)
		}
	}
	s.Equal(1, succeeded)

	opponent, ok := s.registry.Get("contested-opponent")
	s.Require().True(ok)

	// The winning challenger's record must mirror the opponent's
	challenger, ok := s.registry.Get(opponent.OpponentID)
	s.Require().True(ok)
	s.Equal("contested-opponent", challenger.OpponentID)
}

func (s *RegistryTestSuite) TestGetReturnsCopy() {
	s.createTestPair()

	record, ok := s.registry.Get("challenger-id")
	s.Require().True(ok)

	// Mutating the returned record must not affect the stored one
	record.State = models.ChallengeStateAwaitingNumbers

	stored, ok := s.registry.Get("challenger-id")
	s.Require().True(ok)
	s.Equal(models.ChallengeStatePendingAcceptance, stored.State)
}

func (s *RegistryTestSuite) TestTransition() {
	s.createTestPair()

	s.True(s.registry.Transition("challenger-id", models.ChallengeStateAwaitingRoles))

	record, ok := s.registry.Get("challenger-id")
	s.Require().True(ok)
	s.Equal(models.ChallengeStateAwaitingRoles, record.State)

	s.False(s.registry.Transition("missing-user", models.ChallengeStateAwaitingRoles))
}

func (s *RegistryTestSuite) TestTransitionPair() {
	s.createTestPair()

	s.True(s.registry.TransitionPair("challenger-id", "opponent-id", models.ChallengeStateAwaitingRoles))

	challenger, _ := s.registry.Get("challenger-id")
	opponent, _ := s.registry.Get("opponent-id")
	s.Equal(models.ChallengeStateAwaitingRoles, challenger.State)
	s.Equal(models.ChallengeStateAwaitingRoles, opponent.State)
}

func (s *RegistryTestSuite) TestTransitionPairRejectsBrokenMirror() {
	s.createTestPair()
	s.registry.RemovePair("opponent-id", "opponent-id")

	s.False(s.registry.TransitionPair("challenger-id", "opponent-id", models.ChallengeStateAwaitingRoles))

	// The surviving record must be untouched
	challenger, ok := s.registry.Get("challenger-id")
	s.Require().True(ok)
	s.Equal(models.ChallengeStatePendingAcceptance, challenger.State)
}

func (s *RegistryTestSuite) TestRemovePairIsIdempotent() {
	s.createTestPair()

	s.registry.RemovePair("challenger-id", "opponent-id")
	s.registry.RemovePair("challenger-id", "opponent-id")

	_, ok := s.registry.Get("challenger-id")
	s.False(ok)
	_, ok = s.registry.Get("opponent-id")
	s.False(ok)

	// Removed users are free to duel again
	s.createTestPair()
}
