package handler

import (
	"flatmatch/internal/usecase"
)

var (
	authHandler    *AuthHandler
	profileHandler *ProfileHandler
	matchHandler   *MatchHandler
	chatHandler    *ChatHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	profileUseCase *usecase.ProfileUseCase,
	matchUseCase *usecase.MatchUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	matchHandler = NewMatchHandler(matchUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetMatchHandler() *MatchHandler {
	return matchHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
