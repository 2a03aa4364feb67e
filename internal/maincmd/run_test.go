package maincmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/lox/internal/maincmd"
	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSource writes src to a temp file and runs it through Cmd.Run, the way
// the `run` CLI command does, returning captured stdout/stderr and the
// command error.
func runSource(t *testing.T, src string) (stdout, stderr string, err error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))

	var out, eout bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &eout}

	var c maincmd.Cmd
	err = c.Run(context.Background(), stdio, []string{path})
	return out.String(), eout.String(), err
}

// a closure returned from an enclosing function reads the current
// value of its captured variable at each call, not a snapshot.
func TestRun_ClosureCounter(t *testing.T) {
	out, _, err := runSource(t, `
fun makeCounter() { var i = 0; fun c() { i = i + 1; return i; } return c; }
var c = makeCounter(); print c(); print c(); print c();
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

// repeatedly reading a bound method yields callables that all observe
// the same `this`, regardless of how many times the property is read.
func TestRun_MethodBindingStable(t *testing.T) {
	out, _, err := runSource(t, `
class T { name() { return "t"; } }
var t = T(); var m = t.name; print m();
`)
	require.NoError(t, err)
	assert.Equal(t, "t\n", out)
}

// `super` dispatch resolves correctly even from inside a closure
// nested inside the method body that references it.
func TestRun_SuperInClosure(t *testing.T) {
	out, _, err := runSource(t, `
class A { greet() { return "A"; } }
class B < A { greet() { fun inner() { return super.greet(); } return inner(); } }
print B().greet();
`)
	require.NoError(t, err)
	assert.Equal(t, "A\n", out)
}

// an initializer's bare `return;` still yields the constructed
// instance, not nil.
func TestRun_InitReturnsThis(t *testing.T) {
	out, _, err := runSource(t, `
class P { init(x) { this.x = x; return; } }
var p = P(7); print p.x;
`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

// `return` with a value inside `init` is a resolve error, not a
// runtime one, and reports exit code 65.
func TestRun_ReturnValueFromInitializer(t *testing.T) {
	_, stderr, err := runSource(t, `class P { init() { return 1; } }`)
	require.Error(t, err)

	ec, ok := err.(interface{ ExitCode() mainer.ExitCode })
	require.True(t, ok)
	assert.EqualValues(t, 65, ec.ExitCode())
	assert.Contains(t, stderr, "Can't return a value from an initializer.")
}

// a class listing itself as its own superclass is a resolve error.
func TestRun_SelfInheritance(t *testing.T) {
	_, stderr, err := runSource(t, `class A < A {}`)
	require.Error(t, err)

	ec, ok := err.(interface{ ExitCode() mainer.ExitCode })
	require.True(t, ok)
	assert.EqualValues(t, 65, ec.ExitCode())
	assert.Contains(t, stderr, "A class can't inherit from itself.")
}

// calling with the wrong argument count is a runtime error raised
// before the callee's body executes, at exit code 70.
func TestRun_ArityMismatch(t *testing.T) {
	_, stderr, err := runSource(t, `fun f(a,b){} f(1);`)
	require.Error(t, err)

	ec, ok := err.(interface{ ExitCode() mainer.ExitCode })
	require.True(t, ok)
	assert.EqualValues(t, 70, ec.ExitCode())
	assert.Contains(t, stderr, "2")
	assert.Contains(t, stderr, "1")
}

func TestRun_Classes_Inheritance_CallsSuperMethod(t *testing.T) {
	out, _, err := runSource(t, `
class Animal {
  speak() { return "..."; }
}
class Dog < Animal {
  speak() { return "Woof says " + super.speak(); }
}
print Dog().speak();
`)
	require.NoError(t, err)
	assert.Equal(t, "Woof says ...\n", out)
}

func TestRun_GlobalFallback_Forward(t *testing.T) {
	// a reference inside a function body to a global declared later still
	// resolves, because function bodies are only executed after the whole
	// top-level program (and thus the global) is declared.
	out, _, err := runSource(t, `
fun useLater() { return later; }
var later = "defined";
print useLater();
`)
	require.NoError(t, err)
	assert.Equal(t, "defined\n", out)
}
