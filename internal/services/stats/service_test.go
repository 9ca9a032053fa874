package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/kerchief/duelbot/internal/models"
	"github.com/kerchief/duelbot/internal/repositories/scores"
	"github.com/kerchief/duelbot/internal/repositories/scores/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *mocks.MockRepository
	ctx      context.Context

	testGuildID  string
	testUserID   string
	testUsername string
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.testGuildID = "test-guild-id"
	s.testUserID = "test-user-id"
	s.testUsername = "Test Player"
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

// newService builds a service whose repository starts with the given snapshot
func (s *StatsServiceTestSuite) newService(initial models.ScoreSnapshot) Service {
	if initial == nil {
		initial = models.ScoreSnapshot{}
	}
	s.mockRepo.EXPECT().Load(gomock.Any()).Return(&scores.LoadOutput{Snapshot: initial}, nil)

	svc, err := New(s.ctx, &Config{Repository: s.mockRepo})
	s.Require().NoError(err)
	return svc
}

func (s *StatsServiceTestSuite) TestNewRequiresRepository() {
	_, err := New(s.ctx, &Config{})
	s.Require().ErrorIs(err, ErrNilRepository)

	_, err = New(s.ctx, nil)
	s.Require().ErrorIs(err, ErrNilConfig)
}

func (s *StatsServiceTestSuite) TestGetPlayerStatsAbsentReturnsSentinel() {
	svc := s.newService(nil)

	output, err := svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)
	s.Equal(models.UnknownPlayerName, output.Stats.Username)
	s.Equal(0, output.Stats.Points)
	s.Equal(0, output.Stats.GamesPlayed)
}

func (s *StatsServiceTestSuite) TestRecordResultCreatesAndPersists() {
	svc := s.newService(nil)

	var saved models.ScoreSnapshot
	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *scores.SaveInput) error {
			saved = input.Snapshot
			return nil
		})

	output, err := svc.RecordResult(s.ctx, &RecordResultInput{
		GuildID:     s.testGuildID,
		UserID:      s.testUserID,
		Username:    s.testUsername,
		Outcome:     models.GameOutcomeWin,
		PointsDelta: 10,
	})
	s.Require().NoError(err)

	s.Equal(s.testUsername, output.Stats.Username)
	s.Equal(10, output.Stats.Points)
	s.Equal(1, output.Stats.Wins)
	s.Equal(1, output.Stats.GamesPlayed)

	// The persisted snapshot must include the new record
	s.Require().NotNil(saved)
	s.Equal(10, saved[s.testGuildID][s.testUserID].Points)
}

func (s *StatsServiceTestSuite) TestRecordResultRoundTrip() {
	svc := s.newService(nil)
	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	updates := []struct {
		outcome models.GameOutcome
		delta   int
	}{
		{models.GameOutcomeWin, 10},
		{models.GameOutcomeLoss, -15},
		{models.GameOutcomeTie, 0},
		{models.GameOutcomeWin, 10},
	}

	for _, u := range updates {
		_, err := svc.RecordResult(s.ctx, &RecordResultInput{
			GuildID:     s.testGuildID,
			UserID:      s.testUserID,
			Username:    s.testUsername,
			Outcome:     u.outcome,
			PointsDelta: u.delta,
		})
		s.Require().NoError(err)
	}

	output, err := svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)

	s.Equal(5, output.Stats.Points)
	s.Equal(2, output.Stats.Wins)
	s.Equal(1, output.Stats.Losses)
	s.Equal(1, output.Stats.Ties)
	s.Equal(4, output.Stats.GamesPlayed)
	s.Equal(output.Stats.Wins+output.Stats.Losses+output.Stats.Ties, output.Stats.GamesPlayed)
}

func (s *StatsServiceTestSuite) TestRecordResultScopedByGuild() {
	svc := s.newService(nil)
	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.RecordResult(s.ctx, &RecordResultInput{
		GuildID:     s.testGuildID,
		UserID:      s.testUserID,
		Username:    s.testUsername,
		Outcome:     models.GameOutcomeWin,
		PointsDelta: 10,
	})
	s.Require().NoError(err)

	output, err := svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{
		GuildID: "other-guild-id",
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)
	s.Equal(0, output.Stats.GamesPlayed)
}

func (s *StatsServiceTestSuite) TestRecordResultRefreshesUsername() {
	svc := s.newService(models.ScoreSnapshot{
		s.testGuildID: {
			s.testUserID: {Username: "Old Name", Points: 5, Wins: 1, GamesPlayed: 1},
		},
	})
	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	output, err := svc.RecordResult(s.ctx, &RecordResultInput{
		GuildID:     s.testGuildID,
		UserID:      s.testUserID,
		Username:    "New Name",
		Outcome:     models.GameOutcomeTie,
		PointsDelta: 0,
	})
	s.Require().NoError(err)
	s.Equal("New Name", output.Stats.Username)
	s.Equal(5, output.Stats.Points)
}

func (s *StatsServiceTestSuite) TestRecordResultRetriesFailedPersist() {
	svc := s.newService(nil)

	gomock.InOrder(
		s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := svc.RecordResult(s.ctx, &RecordResultInput{
		GuildID:     s.testGuildID,
		UserID:      s.testUserID,
		Username:    s.testUsername,
		Outcome:     models.GameOutcomeWin,
		PointsDelta: 10,
	})
	s.Require().NoError(err)
}

func (s *StatsServiceTestSuite) TestRecordResultSurfacesDoublePersistFailure() {
	svc := s.newService(nil)

	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(2)

	_, err := svc.RecordResult(s.ctx, &RecordResultInput{
		GuildID:     s.testGuildID,
		UserID:      s.testUserID,
		Username:    s.testUsername,
		Outcome:     models.GameOutcomeWin,
		PointsDelta: 10,
	})
	s.Require().ErrorIs(err, ErrPersistFailed)

	// The in-memory mutation has already happened; a later read reflects it
	output, err := svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)
	s.Equal(10, output.Stats.Points)
}

func (s *StatsServiceTestSuite) TestRecordResultRejectsUnknownOutcome() {
	svc := s.newService(nil)

	_, err := svc.RecordResult(s.ctx, &RecordResultInput{
		GuildID:     s.testGuildID,
		UserID:      s.testUserID,
		Username:    s.testUsername,
		Outcome:     models.GameOutcome("draw"),
		PointsDelta: 0,
	})
	s.Require().Error(err)
}
