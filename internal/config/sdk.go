package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SDKPathEnv names the environment variable pointing at the Pico SDK root.
const SDKPathEnv = "PICO_SDK_PATH"

// BoardDirsEnv names an optional environment variable listing additional
// directories of board definition headers.
const BoardDirsEnv = "PICO_BOARD_HEADER_DIRS"

// boardHeaderSubdir is where the SDK keeps its board definition headers.
const boardHeaderSubdir = "src/boards/include/boards"

// ResolveSDKPath reads the SDK location from the environment and checks it
// points at a directory.
func ResolveSDKPath() (string, error) {
	sdkPath := os.Getenv(SDKPathEnv)
	if sdkPath == "" {
		return "", ErrSDKPathNotSet
	}
	info, err := os.Stat(sdkPath)
	if err != nil || !info.IsDir() {
		return "", ErrSDKPathNotDir
	}
	return sdkPath, nil
}

// LoadBoardTypes enumerates the available board identifiers by scanning the
// SDK board header directory, extended by any directories named in
// PICO_BOARD_HEADER_DIRS. Each *.h file stem is one board. The result is
// sorted for stable presentation.
func LoadBoardTypes(sdkPath string) ([]string, error) {
	boards, err := scanBoardHeaders(filepath.Join(sdkPath, filepath.FromSlash(boardHeaderSubdir)))
	if err != nil {
		return nil, err
	}

	if extra := os.Getenv(BoardDirsEnv); extra != "" {
		for _, dir := range filepath.SplitList(extra) {
			if dir == "" {
				continue
			}
			// Extra directories are user supplied; a missing one is skipped
			// rather than failing board enumeration for the SDK itself.
			found, err := scanBoardHeaders(dir)
			if err != nil {
				continue
			}
			boards = append(boards, found...)
		}
	}

	sort.Strings(boards)
	return boards, nil
}

func scanBoardHeaders(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var boards []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".h") {
			continue
		}
		boards = append(boards, strings.TrimSuffix(name, ".h"))
	}
	return boards, nil
}
