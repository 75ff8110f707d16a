// All this does is contain in one place the constants controlling which bits of the inner workings of the
// collections are checked or displayed for debugging purposes. In a release SHOW_MUTATIONS must be set to
// false; CHECK_RANGES may as well be left as true.

package settings

const (
	// The fail-early range check on random-access indices. It is a diagnostic aid and not a safety
	// mechanism, so turning it off changes which violation you get, not whether the program is correct.
	CHECK_RANGES = true

	SHOW_MUTATIONS = false // Shows every ReplaceSubrange performed by the built-in containers.

	SHOW_TESTS = true // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)
