package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/dmitrijs2005/sentimeter/internal/client/prompt"
)

const (
	keyIntro       = "Please provide the HuggingFace API key to use for sentiment analysis"
	keyPrompt      = "Enter key here (should have Inference perm)"
	keyRejected    = "API key validation failed. Please try again."
	saveQuestion   = "Should we save the API key file?"
	saveHelp       = "In this implementation, API key is not encrypted."
	keyEntryClosed = "Received termination signal while awaiting the API key. Program will now gracefully terminate."
)

// credential returns the saved credential, or acquires a new one and offers
// to save it.
func (a *App) credential(ctx context.Context) (models.Credential, error) {
	if cred, ok := a.store.Load(); ok {
		a.log.Info(ctx, "using saved API key", "path", a.store.Path(), "credential", cred.Redacted())
		return cred, nil
	}

	cred, err := a.acquireCredential(ctx)
	if err != nil {
		return "", err
	}

	if err := a.offerSave(ctx, cred); err != nil {
		return "", err
	}
	return cred, nil
}

// acquireCredential prompts until a candidate passes the probe. It never
// returns a credential the service has not accepted.
func (a *App) acquireCredential(ctx context.Context) (models.Credential, error) {
	a.console.Notice(keyIntro)

	for {
		candidate, err := a.prompter.Secret(ctx, keyPrompt)
		if err != nil {
			if prompt.IsCancellation(err) {
				return "", Graceful(keyEntryClosed, err)
			}
			return "", Fatal("Some error occurred as we were awaiting the API key", err)
		}

		cred := models.Credential(candidate)
		// The probe is not tied to ctx: an interrupt is noticed at the next prompt.
		if err := a.sentiment.Probe(context.WithoutCancel(ctx), cred); err != nil {
			a.console.Failure(keyRejected)
			continue
		}

		a.log.Info(ctx, "API key accepted", "credential", cred.Redacted())
		return cred, nil
	}
}

// offerSave asks whether to persist a freshly validated credential. A
// failed write is reported but does not stop the program.
func (a *App) offerSave(ctx context.Context, cred models.Credential) error {
	save, err := a.prompter.Confirm(ctx, saveQuestion, saveHelp, false)
	if err != nil {
		if prompt.IsCancellation(err) {
			return Graceful("Operation was interrupted or escaped. Terminating.", err)
		}
		return Fatal("There was an error in confirming if we should save the API key. Terminating process", err)
	}
	if !save {
		return nil
	}

	if err := a.store.Save(cred); err != nil {
		a.log.Error(ctx, "failed to save API key", "path", a.store.Path(), "error", err)
		a.console.Failure(fmt.Sprintf("Failed to save API key: %v", err))
		return nil
	}

	a.console.Success("Saved API key successfully")
	return nil
}
