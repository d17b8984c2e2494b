// Package remote talks to the repository host's metadata API.
//
// It answers two questions before any destructive work happens: does the
// requested example exist at the branch (ExistenceChecker), and which
// examples exist at all (Catalog). It also owns the URL layout of the host:
//
//	https://api.<host>/repos/<org>/<repo>/contents/examples/<example>?ref=<branch>
//	https://codeload.<host>/<org>/<repo>/tar.gz/<branch>
package remote
