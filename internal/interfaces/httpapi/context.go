package httpapi

import "context"

type contextKey string

const apiUserContextKey contextKey = "api_user"

func withAPIUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, apiUserContextKey, username)
}

func apiUserFromContext(ctx context.Context) string {
	username, _ := ctx.Value(apiUserContextKey).(string)
	return username
}
