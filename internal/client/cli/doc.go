// Package cli provides the interactive sentimeter command-line client.
//
// It wires configuration, the credential store, the classifier client and
// the console prompter, then drives the session protocol:
//
//  1. Load a saved credential, or ask for one and validate it with a probe
//     classification until it is accepted or the operator backs out.
//  2. Offer to save a freshly entered credential (cleartext, default no).
//  3. Let the operator pick a data source: Online (not implemented yet),
//     User (the session loop) or Quit.
//  4. Session loop: read text, classify it, report the scores, repeat. On a
//     failed classification the operator is asked once whether to retry;
//     declining ends the program with a failure status.
//
// Every way out of the protocol is an *Exit carrying the process status.
// The flow is started via App.Run(ctx), which blocks until the protocol ends
// and returns the exit code.
package cli
