// Package engine implements the branching workflow state machine.
//
// Each unit of work (feature, release, hotfix) moves from absent to active
// and back to absent through a start/create and a finish operation:
//   - features branch from develop and merge back into develop
//   - releases branch from develop, merge into main (tagged) and back into develop
//   - hotfixes branch from main and finish exactly like releases
//
// Every operation validates its inputs, checks all preconditions against the
// repository, and only then performs its ordered mutations. The first failing
// mutation aborts the operation; nothing is rolled back.
package engine
