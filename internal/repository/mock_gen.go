// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./engagement.go -destination=../mocks/mock_engagement_repository.go -package=mocks EngagementRepositoryIface
//go:generate mockgen -source=./activity.go -destination=../mocks/mock_activity_repository.go -package=mocks ActivityRepositoryIface
//go:generate mockgen -source=./application.go -destination=../mocks/mock_application_repository.go -package=mocks ApplicationRepositoryIface
//go:generate mockgen -source=./data_element.go -destination=../mocks/mock_data_element_repository.go -package=mocks DataElementRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
