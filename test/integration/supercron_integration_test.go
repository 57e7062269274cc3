package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("supercron CLI", func() {
	var stateFile string

	runCLI := func(stdin string, args ...string) *gexec.Session {
		command := exec.Command(pathToCLI, args...)
		command.Env = append(os.Environ(),
			"PATH="+binDir+string(os.PathListSeparator)+os.Getenv("PATH"),
			"CRONTAB_STATE="+stateFile,
		)
		if stdin != "" {
			command.Stdin = strings.NewReader(stdin)
		}
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		return session
	}

	crontabContent := func() string {
		data, err := os.ReadFile(stateFile)
		if os.IsNotExist(err) {
			return ""
		}
		Expect(err).NotTo(HaveOccurred())
		return string(data)
	}

	BeforeEach(func() {
		tempDir := GinkgoT().TempDir()
		stateFile = filepath.Join(tempDir, "crontab.state")
	})

	Describe("add", func() {
		It("writes a managed entry for a fixed-time sentence", func() {
			session := runCLI("", "add", "-c", "ls", "-r", "midnight", "TEST__ls")
			Eventually(session).Should(gexec.Exit(0))

			Expect(crontabContent()).To(ContainSubstring("0 0 * * * ls # SuperCron__TEST__ls"))
		})

		It("writes a step entry", func() {
			session := runCLI("", "add", "-c", "ls", "-r", "once every 5 minutes", "TEST__ls")
			Eventually(session).Should(gexec.Exit(0))

			Expect(crontabContent()).To(ContainSubstring("*/5 * * * * ls # SuperCron__TEST__ls"))
		})

		It("writes a reboot entry", func() {
			session := runCLI("", "add", "-c", "ls", "-r", "at reboot", "TEST__ls")
			Eventually(session).Should(gexec.Exit(0))

			Expect(crontabContent()).To(ContainSubstring("@reboot ls # SuperCron__TEST__ls"))
		})

		It("rejects an invalid repetition sentence", func() {
			session := runCLI("", "add", "-c", "ls", "-r", "whenever you like", "TEST__ls")
			Eventually(session).Should(gexec.Exit(1))

			Expect(crontabContent()).To(BeEmpty())
		})

		It("rejects a reserved name", func() {
			session := runCLI("", "add", "-c", "ls", "-r", "midnight", "@all")
			Eventually(session).Should(gexec.Exit(1))
		})

		It("prints nothing under --quiet, errors included", func() {
			session := runCLI("", "--quiet", "add", "-c", "ls", "-r", "whenever you like", "TEST__ls")
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out.Contents()).To(BeEmpty())
			Expect(session.Err.Contents()).To(BeEmpty())
		})
	})

	Describe("lifecycle", func() {
		BeforeEach(func() {
			session := runCLI("", "add", "-c", "ls", "-r", "at 4:47 pm", "TEST__ls")
			Eventually(session).Should(gexec.Exit(0))
		})

		It("disables and re-enables a job", func() {
			session := runCLI("", "disable", "TEST__ls")
			Eventually(session).Should(gexec.Exit(0))
			Expect(crontabContent()).To(ContainSubstring("# 47 16 * * * ls # SuperCron__TEST__ls"))

			session = runCLI("", "enable", "TEST__ls")
			Eventually(session).Should(gexec.Exit(0))
			Expect(crontabContent()).To(ContainSubstring("47 16 * * * ls # SuperCron__TEST__ls"))
			Expect(crontabContent()).NotTo(ContainSubstring("# 47 16"))
		})

		It("renames a job", func() {
			session := runCLI("", "rename", "TEST__ls", "TEST__renamed")
			Eventually(session).Should(gexec.Exit(0))
			Expect(crontabContent()).To(ContainSubstring("SuperCron__TEST__renamed"))
			Expect(crontabContent()).NotTo(ContainSubstring("SuperCron__TEST__ls"))
		})

		It("deletes a job", func() {
			session := runCLI("", "delete", "TEST__ls")
			Eventually(session).Should(gexec.Exit(0))
			Expect(crontabContent()).NotTo(ContainSubstring("SuperCron__TEST__ls"))
		})

		It("searches by name", func() {
			session := runCLI("", "search", "TEST__ls")
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("TEST__ls"))
			Expect(session.Out).To(gbytes.Say(`47 16 \* \* \*`))
		})
	})

	Describe("triggers", func() {
		BeforeEach(func() {
			session := runCLI("", "add", "-c", "echo 1", "-r", "at 11:11", "echo1")
			Eventually(session).Should(gexec.Exit(0))
			session = runCLI("", "add", "-c", "echo 2", "-r", "at 12:12", "echo2")
			Eventually(session).Should(gexec.Exit(0))
		})

		It("enables the listener when its source is enabled", func() {
			session := runCLI("", "trigger", "-t", "on if echo2 is enabled", "echo1")
			Eventually(session).Should(gexec.Exit(0))
			Expect(crontabContent()).To(ContainSubstring("SuperCron__echo1%on:echo2:enabled"))

			session = runCLI("", "disable", "echo1")
			Eventually(session).Should(gexec.Exit(0))
			session = runCLI("", "disable", "echo2")
			Eventually(session).Should(gexec.Exit(0))

			session = runCLI("", "enable", "echo2")
			Eventually(session).Should(gexec.Exit(0))
			Expect(crontabContent()).To(ContainSubstring("11 11 * * * echo 1 # SuperCron__echo1%on:echo2:enabled"))
			Expect(crontabContent()).NotTo(ContainSubstring("# 11 11"))
		})

		It("disables the listener when its source is deleted", func() {
			session := runCLI("", "trigger", "-t", "off if echo2 is deleted", "echo1")
			Eventually(session).Should(gexec.Exit(0))

			session = runCLI("", "delete", "echo2")
			Eventually(session).Should(gexec.Exit(0))
			Expect(crontabContent()).To(ContainSubstring("# 11 11 * * * echo 1 # SuperCron__echo1%off:echo2:deleted"))
		})

		It("clears a trigger with none", func() {
			session := runCLI("", "trigger", "-t", "on if echo2 is enabled", "echo1")
			Eventually(session).Should(gexec.Exit(0))

			session = runCLI("", "trigger", "-t", "none", "echo1")
			Eventually(session).Should(gexec.Exit(0))
			Expect(crontabContent()).To(ContainSubstring("SuperCron__echo1\n"))
			Expect(crontabContent()).NotTo(ContainSubstring("%on:echo2:enabled"))
		})

		It("rejects a malformed trigger sentence", func() {
			session := runCLI("", "trigger", "-t", "whenever echo2 changes", "echo1")
			Eventually(session).Should(gexec.Exit(1))
		})
	})

	Describe("clear", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(stateFile, []byte("0 2 * * * /usr/local/bin/backup.sh # nightly\n"), 0o644)).To(Succeed())
			session := runCLI("", "add", "-c", "ls", "-r", "midnight", "TEST__ls")
			Eventually(session).Should(gexec.Exit(0))
		})

		It("removes only managed entries with --force", func() {
			session := runCLI("", "clear", "--force")
			Eventually(session).Should(gexec.Exit(0))

			content := crontabContent()
			Expect(content).To(ContainSubstring("0 2 * * * /usr/local/bin/backup.sh # nightly"))
			Expect(content).NotTo(ContainSubstring("SuperCron__"))
		})

		It("cancels unless the reply is exactly y", func() {
			session := runCLI("no\n", "clear")
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("Cancelled."))
			Expect(crontabContent()).To(ContainSubstring("SuperCron__TEST__ls"))
		})

		It("proceeds on y", func() {
			session := runCLI("y\n", "clear")
			Eventually(session).Should(gexec.Exit(0))
			Expect(crontabContent()).NotTo(ContainSubstring("SuperCron__"))
		})
	})

	Describe("version", func() {
		It("prints the version", func() {
			session := runCLI("", "version")
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("supercron"))
		})
	})
})
