package scan

import (
	"io"
	"os/exec"
	"path/filepath"
)

// Compressed logs are piped through the system decompressor instead of a
// Go implementation, which keeps xz and zstd support cheap.
var decompressors = map[string][]string{
	".gz":  {"gzip", "-cd"},
	".xz":  {"xz", "-cd", "-T", "0"},
	".zst": {"zstd", "-cd", "-T0"},
}

type filteredReader struct {
	cmd *exec.Cmd
	r   io.ReadCloser
}

func (fr *filteredReader) Read(p []byte) (n int, err error) {
	return fr.r.Read(p)
}

func (fr *filteredReader) Close() error {
	err := fr.r.Close()
	if werr := fr.cmd.Wait(); werr != nil && err == nil {
		err = werr
	}
	return err
}

func maybeDecompress(filename string, r io.Reader) (io.Reader, error) {
	args, ok := decompressors[filepath.Ext(filename)]
	if !ok {
		return r, nil
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = r
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &filteredReader{cmd: cmd, r: stdout}, nil
}
