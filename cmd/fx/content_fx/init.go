package content_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"skillsphere/internal/repositories"
	"skillsphere/internal/services"
)

var Module = fx.Provide(
	services.NewPostService,
	services.NewContentService,
	services.NewReactionService,
	services.NewFollowService,
	provideNoteService,
	provideLearningPlanService,
	provideQuizService,
)

func provideNoteService(store repositories.Store, log *zap.Logger) services.NoteServiceInterface {
	return services.NewNoteService(store.Notes(), log)
}

func provideLearningPlanService(store repositories.Store, log *zap.Logger) services.LearningPlanServiceInterface {
	return services.NewLearningPlanService(store.LearningPlans(), log)
}

func provideQuizService(store repositories.Store, log *zap.Logger) services.QuizServiceInterface {
	return services.NewQuizService(store.Quizzes(), log)
}
