package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agentx-labs/hostpal/internal/diag"
	"github.com/agentx-labs/hostpal/internal/mutex"
	"github.com/agentx-labs/hostpal/internal/notify"
	"github.com/agentx-labs/hostpal/internal/pathenc"
	"github.com/agentx-labs/hostpal/internal/platform"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Health check for the host platform layer",
		Long:  `Run diagnostic checks on the configuration, host paths, OS release, locking and notification backend.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0

			fmt.Fprintln(out, "Config check:")
			if err := runConfigCheck(cmd); err != nil {
				failed++
			}

			checks := []struct {
				title string
				run   func(io.Writer) bool
			}{
				{"Path check:", checkPaths},
				{"Host release check:", checkRelease},
				{"Mutex self-test:", checkMutex},
				{"Notification check:", checkNotify},
			}
			for _, c := range checks {
				fmt.Fprintln(out, c.title)
				if !c.run(out) {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}

func checkPaths(out io.Writer) bool {
	ok := true

	diag.ClearError()
	buf := make([]byte, 4096)
	platform.GetCurrentDirectory(buf)
	if cwd := pathenc.CString(buf); cwd != "" {
		fmt.Fprintf(out, "  [ OK ] current directory: %s\n", cwd)
	} else {
		fmt.Fprintf(out, "  [FAIL] current directory could not be read: %s\n", diag.Message(diag.LastError()))
		ok = false
	}

	exe := make([]byte, 4096)
	platform.GetExecutableDirectory(exe)
	exeDir := pathenc.CString(exe)
	if platform.DirectoryExists(exeDir) {
		fmt.Fprintf(out, "  [ OK ] executable directory: %s\n", exeDir)
	} else {
		fmt.Fprintf(out, "  [FAIL] executable directory %s is not a directory\n", exeDir)
		ok = false
	}

	if platform.IsDebuggerPresent() {
		fmt.Fprintln(out, "  [INFO] a debugger is attached")
	}
	return ok
}

func checkRelease(out io.Writer) bool {
	release, err := platform.HostRelease()
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] cannot read host release: %v\n", err)
		return false
	}

	minimum := platform.MinimumRelease(settings.Doctor.MinRelease)
	if minimum == "" {
		fmt.Fprintf(out, "  [INFO] %s %s (no minimum for this OS)\n", runtime.GOOS, release)
		return true
	}

	meets, err := platform.MeetsMinimumRelease(release, minimum)
	switch {
	case err != nil:
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	case !meets:
		fmt.Fprintf(out, "  [FAIL] %s %s is older than the minimum %s\n", runtime.GOOS, release, minimum)
		return false
	default:
		fmt.Fprintf(out, "  [ OK ] %s %s (minimum %s)\n", runtime.GOOS, release, minimum)
		return true
	}
}

func checkMutex(out io.Writer) bool {
	if err := mutexSelfTest(); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintln(out, "  [ OK ] recursive lock, try-lock contention and destroy")
	return true
}

// mutexSelfTest exercises recursion, contention from a second owner and a
// clean destroy on a fresh lock.
func mutexSelfTest() error {
	h := mutex.New()
	a, b := mutex.NewOwner(), mutex.NewOwner()

	h.Lock(a)
	h.Lock(a)
	if d := h.Depth(); d != 2 {
		return fmt.Errorf("recursive lock depth %d, want 2", d)
	}

	contended := make(chan bool)
	go func() { contended <- h.TryLock(b) }()
	if <-contended {
		h.Unlock(b)
		return fmt.Errorf("try-lock by a second owner succeeded while held")
	}

	h.Unlock(a)
	h.Unlock(a)
	if h.Locked() {
		return fmt.Errorf("lock still held after outermost unlock")
	}

	if !h.TryLock(b) {
		return fmt.Errorf("try-lock on a free lock failed")
	}
	h.Unlock(b)

	h.Destroy()
	return nil
}

func checkNotify(out io.Writer) bool {
	name := settings.Notify.Backend
	if name == "" {
		name = "auto"
	}

	r, err := notify.NewBackend(name)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] backend %s: %v\n", name, err)
		return false
	}

	switch r := r.(type) {
	case *notify.CommandRenderer:
		if !r.Available() {
			fmt.Fprintf(out, "  [FAIL] backend %s: %s not found on PATH\n", name, r.Name())
			return false
		}
		fmt.Fprintf(out, "  [ OK ] backend %s uses %s\n", name, r.Name())
	case *notify.TerminalRenderer:
		fmt.Fprintf(out, "  [ OK ] backend %s uses a terminal prompt\n", name)
	default:
		fmt.Fprintf(out, "  [ OK ] backend %s uses the native message box\n", name)
	}
	return true
}
