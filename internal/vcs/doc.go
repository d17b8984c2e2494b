// Package vcs initializes version control in a freshly scaffolded project.
//
// Initializer drives a small state machine over one directory:
//
//	probe binary -> detect enclosing repository (git, then hg)
//	  -> init -> switch to default branch -> stage all -> commit
//
// A repository that already encloses the directory is never touched. When
// the commit step fails after this run created the repository, the new
// metadata directory is removed again.
//
// The VCS itself sits behind Client. CLIClient shells out to git and hg
// through a runner.Runner; GoGitClient uses go-git and needs no binary.
package vcs
