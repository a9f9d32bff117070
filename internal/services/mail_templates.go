package services

import (
	"fmt"
	"strings"

	"github.com/creativeimage/wedding-portal/backend/internal/config"
	"github.com/creativeimage/wedding-portal/backend/internal/fields"
	"github.com/creativeimage/wedding-portal/backend/internal/models"
)

// Mail bodies are Romanian, matching the studio's client base.

func projectLink(portal *config.PortalConfig, projectID uint) string {
	return fmt.Sprintf("%s/dashboard/projects/%d", portal.BaseURL, projectID)
}

func buildPendingChangesBody(proposerName string, project *models.Project, portal *config.PortalConfig) string {
	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<p>Clientul <strong>%s</strong> a propus modificări pentru proiectul <strong>%s</strong>.</p>", proposerName, project.Name))
	sb.WriteString("<p>Te rugăm să revizuiești modificările în panoul de administrare.</p>")
	sb.WriteString(fmt.Sprintf("<a href=\"%s\">Vezi proiectul</a>", projectLink(portal, project.ID)))
	sb.WriteString("</body></html>")
	return sb.String()
}

func buildRejectionBody(owner *models.User, mod *models.Modification, reason string, portal *config.PortalConfig) string {
	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<p>Salut, %s!</p>", owner.DisplayName()))
	sb.WriteString(fmt.Sprintf("<p>Modificarea ta pentru proiectul <strong>%s</strong> (%s) a fost respinsă.</p>", mod.Project.Name, fields.Label(mod.FieldName)))
	sb.WriteString(fmt.Sprintf("<p><strong>Motiv:</strong> %s</p>", reason))
	sb.WriteString("<p>Poți face modificări noi dacă este necesar.</p>")
	sb.WriteString(fmt.Sprintf("<a href=\"%s\">Vezi proiectul</a>", projectLink(portal, mod.ProjectID)))
	sb.WriteString("</body></html>")
	return sb.String()
}

func buildDigestBody(project *models.Project, changes []models.Modification, portal *config.PortalConfig) string {
	var lines []string
	for _, change := range changes {
		lines = append(lines, fmt.Sprintf("• %s: %s", fields.Label(change.FieldName), change.NewValue))
	}

	clientName := "Client"
	if project.User != nil {
		clientName = project.User.DisplayName()
	}

	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<p>Salut %s,</p>", clientName))
	sb.WriteString(fmt.Sprintf("<p>Proiectul tău <strong>%s</strong> a fost actualizat de către videograf.</p>", project.Name))
	sb.WriteString("<p><strong>Modificările efectuate:</strong></p>")
	sb.WriteString(fmt.Sprintf("<pre style=\"background: #f5f5f5; padding: 10px; border-radius: 5px;\">%s</pre>", strings.Join(lines, "\n")))
	sb.WriteString("<p>Poți vizualiza toate detaliile proiectului accesând:</p>")
	sb.WriteString(fmt.Sprintf("<a href=\"%s\">Vezi proiectul</a>", projectLink(portal, project.ID)))
	sb.WriteString(fmt.Sprintf("<br><br><p>Cu respect,<br>%s</p>", portal.StudioName))
	sb.WriteString("</body></html>")
	return sb.String()
}

func buildWelcomeBody(user *models.User, plainPassword string, portal *config.PortalConfig) string {
	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<p>Salut %s,</p>", user.DisplayName()))
	sb.WriteString(fmt.Sprintf("<p>Contul tău pe portalul %s este pregătit.</p>", portal.StudioName))
	sb.WriteString("<p><strong>Date de autentificare:</strong></p>")
	sb.WriteString(fmt.Sprintf("<p>Email: %s<br>Parolă: %s</p>", user.Email, plainPassword))
	sb.WriteString(fmt.Sprintf("<a href=\"%s/login\">Autentifică-te</a>", portal.BaseURL))
	sb.WriteString(fmt.Sprintf("<br><br><p>Cu respect,<br>%s</p>", portal.StudioName))
	sb.WriteString("</body></html>")
	return sb.String()
}
