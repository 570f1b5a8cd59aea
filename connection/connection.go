/*
Package connection implements and controls a Singleton instantiation of the client library.
All calls to the management API should be made via this package and the client it controls.

Login logic is handled here with the following flow:
if a username and password (or passfile) were both supplied, only those credentials are tried.
Otherwise, a cached token file is tried first, falling back to credentials
(prompting for any that are missing, unless running in script mode).
*/
package connection

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Copysiter/O3GO-WA/client"
	"github.com/Copysiter/O3GO-WA/client/objlog"
	"github.com/Copysiter/O3GO-WA/client/types"
	"github.com/Copysiter/O3GO-WA/clilog"
	"github.com/Copysiter/O3GO-WA/connection/credprompt"
	"github.com/Copysiter/O3GO-WA/log"
	"github.com/Copysiter/O3GO-WA/utilities/cfgdir"
)

// Client is the primary connection point from wactl to the backend.
var Client *client.Client

// CurrentUser holds cached data about the logged-in user.
var CurrentUser types.User

var (
	ErrNotInitialized = errors.New("client must be initialized")
)

// Initialize creates and starts a Client using the given connection string of the form <host>:<port>.
// Destroys a pre-existing connection (but does not log out), if there was one.
// restLogPath should be left empty outside of test packages.
//
// You probably want to call Login after a successful Initialize call.
func Initialize(conn string, UseHttps, InsecureNoEnforceCerts bool, restLogPath string) (err error) {
	if Client != nil {
		End()
	}

	var l objlog.ObjLog = nil
	if restLogPath != "" { // used for testing, not intended for production modes
		l, err = objlog.NewJSONLogger(restLogPath)
		if err != nil {
			return err
		}
	} else if clilog.Writer != nil && (clilog.Writer.GetLevel() == log.Level(clilog.DEBUG) || clilog.Writer.GetLevel() == log.Level(clilog.INFO)) { // spin up the rest logger if in INFO+
		l, err = objlog.NewJSONLogger(cfgdir.DefaultRestLogPath)
		if err != nil {
			return err
		}
	}

	if Client, err = client.NewOpts(
		client.Opts{
			Server:                 conn,
			UseHttps:               UseHttps,
			InsecureNoEnforceCerts: InsecureNoEnforceCerts,
			ObjLogger:              l,
		}); err != nil {
		return err
	}
	return nil
}

// Credentials is the temporary struct for passing credentials into Login.
type Credentials struct {
	Username     string
	Password     string
	PassfilePath string
}

// Login the initialized Client.
// Attempts to use a cached token first, then falls back to supplied credentials.
//
// Ineffectual if Client is already logged in.
func Login(cred Credentials, scriptMode bool) (err error) {
	if Client == nil {
		return ErrNotInitialized
	}
	if Client.LoggedIn() {
		return nil
	}

	// did we log in via credentials (or via token)?
	var viaCred bool

	// if a username and password/passfile were both supplied, *only* try to login using those credentials
	if cred.Username != "" && (cred.Password != "" || cred.PassfilePath != "") {
		if pass, err := skimPassFile(cred.PassfilePath); err != nil {
			return err
		} else if pass != "" {
			cred.Password = pass
		}

		if err := Client.Login(cred.Username, cred.Password); err != nil {
			return err
		}

		viaCred = true
	} else {
		// attempt to login via token, falling back to credentials
		if err := loginViaToken(cred.Username); err != nil {
			// token failure; log and move on
			clilog.Writer.Warnf("Failed to login via token: %v", err)

			if err = loginViaCredentials(cred, scriptMode); err != nil {
				clilog.Writer.Errorf("Failed to login via credentials: %v", err)
				return err
			}
			viaCred = true
		}
	}

	var s = "token"
	if viaCred {
		s = "credentials"
	}
	clilog.Writer.Infof("Logged in via %v", s)

	// on successful login, cache the user data attached to the session
	session, err := Client.SessionData()
	if err != nil {
		return errors.New("failed to cache user info: " + err.Error())
	}
	CurrentUser = session.User

	// check that the user we fetched actually matches the given username
	if cred.Username != "" && session.Username != cred.Username {
		return fmt.Errorf("server returned a different username (%v) than the given credentials (%v)",
			session.Username, cred.Username)
	}

	// create/refresh the token
	if err := createTokenFile(session.Username); err != nil {
		clilog.Writer.Warnf("%v", err.Error())
		// failing to create the token is not fatal
	}

	return nil
}

// loginViaToken attempts to login via the token in the user's config directory.
// Returns an error on failures. This error should be considered nonfatal and the user logged in via
// an alternative method instead.
//
// If a username was given, it will first be matched against the username found in the file.
// This allows a sanity check without touching the backend.
func loginViaToken(username string) (err error) {
	var tknbytes []byte
	// NOTE the reversal of standard error checking (`err == nil`)
	if tknbytes, err = os.ReadFile(cfgdir.DefaultTokenPath); err == nil {
		// split the username and token
		exploded := strings.Split(string(tknbytes), "\n")
		if len(exploded) != 2 || exploded[0] == "" || exploded[1] == "" {
			return errors.New("failed to split token file into <username>\n<token>")
		}
		if (username != "") && username != exploded[0] {
			return fmt.Errorf("tokenfile username (%v) does not match given username (%v)", exploded[0], username)
		}

		if err = Client.ImportLoginToken(exploded[1]); err == nil {
			if err = Client.TestLogin(); err == nil {
				return nil
			}
		}
	}
	return
}

// Attempts to login via the given credentials struct.
// If insufficient information was given and we are not in script mode, spins up a credentials prompt TUI.
func loginViaCredentials(cred Credentials, scriptMode bool) error {
	// try to pull a password out of the passfile
	var err error
	cred.Password, err = skimPassFile(cred.PassfilePath)
	if err != nil {
		return err
	}

	if cred.Username == "" || cred.Password == "" {
		// if script mode, do not prompt
		if scriptMode {
			return errors.New("no valid token found.\n" +
				"Please login via --username and {--password | --passfile}")
		}

		// prompt for credentials
		user, pass, err := credprompt.Collect(cred.Username)
		if err != nil {
			return err
		}
		cred.Username = user
		cred.Password = pass
	}

	return Client.Login(cred.Username, cred.Password)
}

// skimPassFile slurps the file at the given path if path != "".
// Returns the password found, an error opening/slurping the file, or "" (if path is empty).
func skimPassFile(path string) (password string, err error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read password from %v: %v", path, err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return "", nil
}

// createTokenFile caches the login token for future use.
//
// Token files have the form:
//
// <username>
//
// <token>
func createTokenFile(username string) error {
	token, err := Client.ExportLoginToken()
	if err != nil {
		return fmt.Errorf("failed to export login token: %v", err)
	}

	// write out the username, then the token
	fd, err := os.OpenFile(cfgdir.DefaultTokenPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token: %v", err)
	}

	if _, err := fd.WriteString(username + "\n"); err != nil {
		return fmt.Errorf("failed to write token: %v", err)
	}
	if _, err := fd.WriteString(token); err != nil {
		return fmt.Errorf("failed to write token: %v", err)
	}

	if err = fd.Close(); err != nil {
		return fmt.Errorf("failed to close token file: %v", err)
	}

	clilog.Writer.Infof("Created token file @ %v", cfgdir.DefaultTokenPath)
	return nil
}

// End closes the connection to the server and destroys the data in the connection singleton.
// Does not logout the user as to not invalidate existing tokens.
//
// To reconnect, you will need to call Initialize() again.
func End() error {
	CurrentUser = types.User{}
	if Client == nil { // job's done
		return nil
	}

	if err := Client.Close(); err != nil {
		return err
	}
	//Client = nil // does not nil out as to reduce the likelihood of nil pointer panics

	return nil
}
