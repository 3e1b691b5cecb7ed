package main

import (
	"log/slog"
	"os"

	"autopecas_api/internal/subscriber"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := subscriber.NewHandler(logger)
	lambda.Start(h.Handle)
}
