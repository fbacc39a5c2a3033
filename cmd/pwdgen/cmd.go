package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chirichan/pwdgen/internal/sampler"
	"github.com/chirichan/pwdgen/version"
)

// MaxLength caps the length accepted from command line, csv and http input.
const MaxLength = 2048

const (
	OutputClipboard = 1
	OutputConsole   = 2
)

type PwdGenCLI struct {
	Logger    *slog.Logger
	Sampler   *sampler.Sampler
	Clipboard Clipboard
	Notify    Notifier
}

// levelClasses maps a strength level to the classes it enables.
var levelClasses = map[int]sampler.ClassSet{
	1: sampler.NewClassSet(sampler.Digit),
	2: sampler.NewClassSet(sampler.Lowercase, sampler.Digit),
	3: sampler.NewClassSet(sampler.Uppercase, sampler.Lowercase, sampler.Digit),
	4: sampler.AllClasses,
}

// configFromFlags builds the generation config of the root command. --level,
// when given, replaces the individual class flags.
func configFromFlags(cmd *cobra.Command) (sampler.GenerationConfig, error) {
	length, _ := cmd.Flags().GetInt("length")
	if length < 1 || length > MaxLength {
		return sampler.GenerationConfig{}, fmt.Errorf("length must range 1-%d", MaxLength)
	}
	cfg := sampler.GenerationConfig{Length: length}

	if cmd.Flags().Changed("level") {
		level, _ := cmd.Flags().GetInt("level")
		classes, ok := levelClasses[level]
		if !ok {
			return sampler.GenerationConfig{}, errors.New("level must range 1-4")
		}
		cfg.Classes = classes
		return cfg, nil
	}

	for _, c := range sampler.Classes {
		if on, _ := cmd.Flags().GetBool(c.String()); on {
			cfg.Classes = cfg.Classes.With(c)
		}
	}
	return cfg, nil
}

// samplerFor returns a reproducible sampler when --seed is given.
func (m *PwdGenCLI) samplerFor(cmd *cobra.Command) *sampler.Sampler {
	if !cmd.Flags().Changed("seed") {
		return m.Sampler
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	m.Logger.Warn("seeded output is reproducible, do not use it for real passwords", "seed", seed)
	return sampler.New(sampler.SeededSource(seed))
}

func (m *PwdGenCLI) Root(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		fmt.Fprintf(cmd.OutOrStdout(), "pwdgen version is %s\n", version.Version)
		return nil
	}
	output, _ := cmd.Flags().GetInt("output")
	if output != OutputClipboard && output != OutputConsole {
		return fmt.Errorf("output param err: not support %d", output)
	}
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	s, err := m.samplerFor(cmd).Generate(cfg)
	if err != nil {
		if errors.Is(err, sampler.ErrNoCharacterClassSelected) {
			m.Notify.Alert(MsgNoClass, err)
		}
		return err
	}
	m.Logger.Debug("generated", "length", cfg.Length, "classes", cfg.Classes.String())

	if output == OutputConsole {
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	if err := m.Clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	m.Notify.Success(MsgCopySuccess, "length", len(s))
	return nil
}

func (m *PwdGenCLI) Shell(cmd *cobra.Command, args []string) error {
	s := NewSession(m.samplerFor(cmd), m.Clipboard, m.Notify)
	return runShell(s, cmd.InOrStdin(), cmd.OutOrStdout())
}

func NewCLI() *cobra.Command {
	logger := slog.Default()
	return newCLI(&PwdGenCLI{
		Logger:    logger,
		Sampler:   sampler.New(nil),
		Clipboard: systemClipboard{},
		Notify:    Notifier{Logger: logger},
	})
}

func newCLI(muCLI *PwdGenCLI) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pwdgen",
		Short:         "生成随机密码",
		RunE:          muCLI.Root,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().BoolP("version", "v", false, "版本")
	rootCmd.PersistentFlags().Uint64("seed", 0, "固定随机种子, 输出可复现, 仅用于调试")
	_ = rootCmd.PersistentFlags().MarkHidden("seed")
	rootCmd.Flags().IntP("length", "n", DefaultLength, fmt.Sprintf("生成的密码长度, [1, %d]", MaxLength))
	rootCmd.Flags().IntP("level", "L", 4, "强度等级, 1: 数字, 2: +小写, 3: +大写, 4: +符号。指定后忽略各字符类开关")
	rootCmd.Flags().BoolP("upper", "u", true, "包含大写字母")
	rootCmd.Flags().BoolP("lower", "l", true, "包含小写字母")
	rootCmd.Flags().BoolP("digit", "d", true, "包含数字")
	rootCmd.Flags().BoolP("symbol", "s", true, "包含符号")
	rootCmd.Flags().IntP("output", "o", OutputClipboard, "输出方式, 1: 剪贴板, 2: 控制台")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "交互模式, 可反复生成、调整长度和字符类、复制到剪贴板",
		Args:  cobra.NoArgs,
		RunE:  muCLI.Shell,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "按 csv 配置批量生成密码 (name,length,upper,lower,digit,symbol)。不指定文件则读取剪贴板。",
		Args:  cobra.MaximumNArgs(1),
		RunE:  muCLI.Batch,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务, POST /api/v1/generate",
		Args:  cobra.NoArgs,
		RunE:  muCLI.Serve,
	}
	serveCmd.Flags().String("addr", ":8080", "监听地址, 默认读取环境变量 PWDGEN_ADDR")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "版本",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pwdgen %s\n", version.Version)
		},
	}

	rootCmd.AddCommand(
		shellCmd,
		batchCmd,
		serveCmd,
		versionCmd,
	)
	return rootCmd
}
