package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Bootstraps the first account against a running portfolio server, for
// provisioning a fresh deployment without opening a browser.

const defaultServerURL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringEmail
	stepEnteringPassword
	stepEnteringConfirm
	stepSigningUp
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	username     string
	email        string
	password     string
	confirm      string
	currentInput string
	userID       uint
	message      string
	quitting     bool
}

type signupSuccessMsg struct {
	userID   uint
	username string
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	serverURL := os.Getenv("PORTFOLIO_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	return model{
		step:      stepEnteringUsername,
		serverURL: serverURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func signupUser(serverURL, username, email, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"username":         username,
			"email":            email,
			"password":         password,
			"confirm_password": confirm,
		}

		jsonData, _ := json.Marshal(payload)
		signupURL := serverURL + "/api/v1/auth/signup"

		req, _ := http.NewRequest("POST", signupURL, bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		var result struct {
			UserID   uint   `json:"user_id"`
			Username string `json:"username"`
			Success  bool   `json:"success"`
			Error    string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}

		if resp.StatusCode != http.StatusCreated || !result.Success {
			if result.Error != "" {
				return errMsg{fmt.Errorf("%s", result.Error)}
			}
			return errMsg{fmt.Errorf("signup failed (status %d)", resp.StatusCode)}
		}

		return signupSuccessMsg{userID: result.UserID, username: result.Username}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringUsername || m.step == stepEnteringEmail ||
				m.step == stepEnteringPassword || m.step == stepEnteringConfirm {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringConfirm
				}

			case stepEnteringConfirm:
				if m.currentInput != "" {
					m.confirm = m.currentInput
					m.currentInput = ""
					m.step = stepSigningUp
					m.message = "Creating account..."
					return m, signupUser(m.serverURL, m.username, m.email, m.password, m.confirm)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case signupSuccessMsg:
		m.userID = msg.userID
		m.step = stepComplete
		m.message = successStyle.Render(fmt.Sprintf("✓ Account created for %s (user #%d)", msg.username, msg.userID))

	case errMsg:
		// Back to the email step; username usually survives a retry
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepEnteringEmail
		m.password = ""
		m.confirm = ""
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🗂 Portfolio Server Setup\n\n"))

	if m.message != "" && m.step != stepSigningUp && m.step != stepComplete {
		s.WriteString(m.message + "\n\n")
	}

	switch m.step {
	case stepEnteringUsername:
		s.WriteString(promptStyle.Render("Choose a username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Enter your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Choose a password (min 6 characters):\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringConfirm:
		s.WriteString(promptStyle.Render("Confirm password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepSigningUp:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString(fmt.Sprintf("\nLog in at %s/login\n", m.serverURL))
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
