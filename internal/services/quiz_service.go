package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/pkg/utils"
)

const minQuizOptions = 2

type QuizInput struct {
	Title     string
	Questions []db_models.QuizQuestion
}

func (in QuizInput) normalize() (QuizInput, error) {
	out := QuizInput{Title: strings.TrimSpace(in.Title)}
	if out.Title == "" {
		return out, utils.NewValidationError("title is required")
	}
	if len(in.Questions) == 0 {
		return out, utils.NewValidationError("a quiz needs at least one question")
	}

	for _, q := range in.Questions {
		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			return out, utils.NewValidationError("question text is required")
		}
		if len(q.Options) < minQuizOptions {
			return out, utils.NewValidationError("a question needs at least two options")
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return out, utils.NewValidationError("answer must index one of the options")
		}
		out.Questions = append(out.Questions, q)
	}
	return out, nil
}

type QuizServiceInterface interface {
	CreateQuiz(ctx context.Context, caller *Principal, in QuizInput) (*db_models.Quiz, error)
	ListQuizzes(ctx context.Context) ([]db_models.Quiz, error)
}

type QuizService struct {
	quizRepo repositories.QuizRepository
	log      *zap.Logger
}

func NewQuizService(quizRepo repositories.QuizRepository, log *zap.Logger) QuizServiceInterface {
	return &QuizService{
		quizRepo: quizRepo,
		log:      log.Named("quizzes"),
	}
}

// CreateQuiz always records the caller as the author.
func (s *QuizService) CreateQuiz(ctx context.Context, caller *Principal, in QuizInput) (*db_models.Quiz, error) {
	if caller == nil {
		return nil, utils.ErrUnauthenticated
	}
	if caller.Source != SourceUser {
		return nil, utils.NewForbiddenError("only users can create quizzes")
	}
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	quiz := &db_models.Quiz{OwnerID: caller.ID, Title: in.Title, Questions: in.Questions}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, storeError(s.log, "create quiz", err)
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]db_models.Quiz, error) {
	quizzes, err := s.quizRepo.List(ctx)
	if err != nil {
		return nil, storeError(s.log, "list quizzes", err)
	}
	return quizzes, nil
}
