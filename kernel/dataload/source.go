package dataload

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// Source yields a stream of line-protocol records to load.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

type FileSource struct {
	Path string
}

func (s *FileSource) Name() string {
	return s.Path
}

func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open [%s]", s.Path)
	}
	return file, nil
}

// SFTPSource pulls a remote file over sftp. Host key checking is skipped;
// these transfers run inside the deployment network.
type SFTPSource struct {
	Host     string
	Port     int
	Username string
	Password string
	Path     string
}

func (s *SFTPSource) Name() string {
	return fmt.Sprintf("sftp://%s@%s:%d%s", s.Username, s.Host, s.port(), s.Path)
}

func (s *SFTPSource) port() int {
	if s.Port == 0 {
		return 22
	}
	return s.Port
}

func (s *SFTPSource) Open(_ context.Context) (io.ReadCloser, error) {
	config := &ssh.ClientConfig{
		User:            s.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(s.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	sshConn, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", s.Host, s.port()), config)
	if err != nil {
		return nil, errors.Wrapf(err, "ssh dial to [%s] failed", s.Host)
	}

	sftpClient, err := sftp.NewClient(sshConn)
	if err != nil {
		_ = sshConn.Close()
		return nil, errors.Wrap(err, "failed to start sftp subsystem")
	}

	remote, err := sftpClient.Open(s.Path)
	if err != nil {
		_ = sftpClient.Close()
		_ = sshConn.Close()
		return nil, errors.Wrapf(err, "failed to open remote [%s]", s.Path)
	}

	return &sftpStream{file: remote, sftp: sftpClient, ssh: sshConn}, nil
}

type sftpStream struct {
	file *sftp.File
	sftp *sftp.Client
	ssh  *ssh.Client
}

func (s *sftpStream) Read(p []byte) (int, error) {
	return s.file.Read(p)
}

func (s *sftpStream) Close() error {
	_ = s.file.Close()
	_ = s.sftp.Close()
	return s.ssh.Close()
}
