package utils

// Assert panics when condition is false. It guards programmer errors only,
// never input the library is expected to tolerate.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
