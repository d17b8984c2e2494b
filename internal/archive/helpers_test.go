package archive

import (
	"archive/tar"
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/stretchr/testify/require"
)

// entry is one member of a generated test tarball
type entry struct {
	name     string
	body     string
	typeflag byte
	linkname string
}

func dir(name string) entry         { return entry{name: name, typeflag: tar.TypeDir} }
func file(name, body string) entry  { return entry{name: name, body: body, typeflag: tar.TypeReg} }
func symlink(name, to string) entry { return entry{name: name, typeflag: tar.TypeSymlink, linkname: to} }

func bytesReader(b []byte) io.Reader { return bytes.NewReader(b) }

func buildTarGz(t *testing.T, entries ...entry) []byte {
	t.Helper()

	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)

	for _, e := range entries {
		hdr := &tar.Header{
			Name:     e.name,
			Typeflag: e.typeflag,
			Linkname: e.linkname,
			Mode:     0o644,
		}
		if e.typeflag == tar.TypeDir {
			hdr.Mode = 0o755
		}
		if e.typeflag == tar.TypeReg {
			hdr.Size = int64(len(e.body))
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if e.typeflag == tar.TypeReg {
			_, err := tw.Write([]byte(e.body))
			require.NoError(t, err)
		}
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gzw.Close())
	return buf.Bytes()
}

// refineArchive mimics the codeload layout of the refine monorepo
func refineArchive(t *testing.T) []byte {
	return buildTarGz(t,
		dir("refine-master/"),
		file("refine-master/README.md", "# refine"),
		dir("refine-master/examples/"),
		dir("refine-master/examples/antd/"),
		file("refine-master/examples/antd/package.json", `{"name":"antd"}`),
		dir("refine-master/examples/antd/src/"),
		file("refine-master/examples/antd/src/App.tsx", "export const App = () => null;"),
		dir("refine-master/examples/antd-v4/"),
		file("refine-master/examples/antd-v4/package.json", `{"name":"antd-v4"}`),
		dir("refine-master/examples/mui/"),
		file("refine-master/examples/mui/package.json", `{"name":"mui"}`),
	)
}

func antdRequest(dest string) domain.ExampleRequest {
	return domain.ExampleRequest{
		Organization: "refinedev",
		Repository:   "refine",
		Example:      "antd",
		Branch:       "master",
		Destination:  dest,
	}
}

// tempArchiveFrom writes data to a temp archive handle inside dir
func tempArchiveFrom(t *testing.T, dir string, data []byte) *TempArchive {
	t.Helper()
	path := filepath.Join(dir, ".refine-example.temp-1")
	require.NoError(t, writeBytes(path, data))
	return newTempArchive(path)
}
