package cli

import (
	"context"

	"github.com/dmitrijs2005/sentimeter/internal/client/client"
	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/dmitrijs2005/sentimeter/internal/client/prompt"
)

const (
	analyzePrompt   = "Enter the text you want to analyze (You can leave at any point using ESC/Ctrl-C)"
	analysisFailed  = "The prompt sentiment analysis failed"
	retryQuestion   = "Do you want to try again?"
	retryHelp       = "If not program will terminate"
	sessionClosed   = "Received termination signal. Program will now gracefully terminate."
	retryAborted    = "A termination signal has been sent. Program will terminate."
	retryNotWanted  = "Sentiment analysis was not retried. Program will now terminate."
	retryPromptFail = "An error occurred as we were awaiting confirmation from user. Program will now terminate"
)

// runSession is the prompt → classify → report/retry loop. Success always
// leads back to the prompt; the only ways out are the Exit values returned
// from the input prompt or from the retry confirmation.
func (a *App) runSession(ctx context.Context, cred models.Credential) error {
	for {
		text, err := a.prompter.Text(ctx, analyzePrompt)
		if err != nil {
			if prompt.IsCancellation(err) {
				return Graceful(sessionClosed, err)
			}
			return Fatal("An error occurred", err)
		}

		req := models.ClassificationRequest{Text: text, Credential: cred}
		// An in-flight request is never cancelled; Ctrl-C is seen at the next prompt.
		analysis, err := a.sentiment.Analyze(context.WithoutCancel(ctx), req)
		if err == nil {
			a.console.Report(analysis)
			continue
		}

		a.log.Warn(ctx, "sentiment analysis failed", "error", err)
		a.console.Failure(analysisFailed + ": " + client.Reason(err))

		decision, err := a.confirmRetry(ctx)
		if err != nil {
			return err
		}
		if decision == models.DecisionStop {
			return Fatal(retryNotWanted, ErrRetryDeclined)
		}
	}
}

// confirmRetry asks exactly once. Cancelling here is not a graceful stop.
func (a *App) confirmRetry(ctx context.Context) (models.SessionDecision, error) {
	retry, err := a.prompter.Confirm(ctx, retryQuestion, retryHelp, false)
	if err != nil {
		if prompt.IsCancellation(err) {
			return models.DecisionStop, Fatal(retryAborted, err)
		}
		return models.DecisionStop, Fatal(retryPromptFail, err)
	}
	return models.DecisionFrom(retry), nil
}
