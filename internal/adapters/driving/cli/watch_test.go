package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// resetWatchFlags restores the watch command's flag state between tests.
func resetWatchFlags() {
	watchDir = "."
	watchGlob = ""
	watchChatID = ""
	watchCmd.Flags().Lookup("dir").Changed = false
	watchCmd.Flags().Lookup("glob").Changed = false
	watchCmd.Flags().Lookup("chat-id").Changed = false
}

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch", watchCmd.Use)
}

func TestWatchCmd_Short(t *testing.T) {
	assert.Equal(t, "Import files as they change on disk", watchCmd.Short)
}

func TestWatchCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWatchFlags()

	mock := watchService.(*mockWatchService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"watch", "--dir", "/tmp/inbox", "--glob", "*.md",
		"--chat-id", "7b0d9f7e-4f7b-4e57-9b5a-2f2d6f3a8c1e",
	})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 1, mock.watchCalls)
	assert.Equal(t, domain.WatchRequest{
		Dir:    "/tmp/inbox",
		Glob:   "*.md",
		ChatID: "7b0d9f7e-4f7b-4e57-9b5a-2f2d6f3a8c1e",
	}, mock.lastRequest)
	assert.Contains(t, buf.String(), "Watching /tmp/inbox")
}

func TestWatchCmd_DefaultsToCurrentDirectory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWatchFlags()

	mock := watchService.(*mockWatchService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"watch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, ".", mock.lastRequest.Dir)
	assert.Empty(t, mock.lastRequest.Glob)
	assert.Empty(t, mock.lastRequest.ChatID)
}

func TestWatchCmd_InvalidChatID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWatchFlags()

	mock := watchService.(*mockWatchService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", "--chat-id", "nope"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --chat-id")
	assert.Zero(t, mock.watchCalls)
}

func TestWatchCmd_ServiceNotConfigured(t *testing.T) {
	oldWatch := watchService
	watchService = nil
	defer func() {
		watchService = oldWatch
	}()
	defer resetWatchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "watch service not configured")
}

func TestWatchCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWatchFlags()

	watchService = &mockWatchService{err: errors.New("no such directory")}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", "--dir", "/missing"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such directory")
}
