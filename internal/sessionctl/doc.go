// Package sessionctl provides an interactive console for the encrypted
// session record.
//
// On start the stored session (if any) is restored and every later change is
// encrypted back into session storage. Commands:
//   - help           show available commands
//   - set            prompt for token, id and email and store them
//   - show           print the current session
//   - clear          forget the session and remove it from storage
//   - rekey          re-encrypt the stored session under a new secret
//   - exit | quit    leave the program
package sessionctl
