package controllers_fx

import (
	"go.uber.org/fx"
	"skillsphere/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPostController),
	fx.Provide(controllers.NewNoteController),
	fx.Provide(controllers.NewLearningPlanController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewQuizController))
