package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	userDomain "github.com/allisson/messaging/internal/user/domain"
	userUseCase "github.com/allisson/messaging/internal/user/usecase"
)

// RunCreateUser registers a new user account, optionally with the admin role.
// Outputs the account ID and username in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UserUseCase,
	logger *slog.Logger,
	writer io.Writer,
	username string,
	password string,
	isAdmin bool,
	format string,
) error {
	logger.Info("creating new user",
		slog.String("username", username),
		slog.Bool("is_admin", isAdmin),
	)

	user, err := useCase.Create(ctx, userDomain.CreateUserInput{
		Username: username,
		Password: password,
		IsAdmin:  isAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		outputCreateUserJSON(user, writer)
	} else {
		outputCreateUserText(user, writer)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.Bool("is_admin", user.IsAdmin),
	)

	return nil
}

// outputCreateUserText outputs the result in human-readable text format.
func outputCreateUserText(user *userDomain.User, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "User created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(writer, "Username: %s\n", user.Username)
	_, _ = fmt.Fprintf(writer, "Admin: %t\n", user.IsAdmin)
}

// outputCreateUserJSON outputs the result in JSON format for machine consumption.
func outputCreateUserJSON(user *userDomain.User, writer io.Writer) {
	result := map[string]interface{}{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"is_admin": user.IsAdmin,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
