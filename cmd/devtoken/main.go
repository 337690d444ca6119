// devtoken emite un access token de desarrollo con la misma forma que los de Supabase Auth.
//
// Uso: go run ./cmd/devtoken -user <uuid> [-email a@b.de] [-minutes 60]
// Lee SUPABASE_JWT_SECRET, SUPABASE_JWT_AUDIENCE y JWT_ISSUER de la configuración.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Vitrinas-api/pkg/config"
	"github.com/jhoicas/Vitrinas-api/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user_id (sub) de app_users")
	email := flag.String("email", "", "email a incluir en el token")
	minutes := flag.Int("minutes", 0, "validez en minutos (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "falta -user")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "SUPABASE_JWT_SECRET no está definido")
		os.Exit(1)
	}
	exp := *minutes
	if exp <= 0 {
		exp = cfg.Auth.Expiration
	}

	token, err := jwt.Generate(cfg.Auth.JWTSecret, *userID, *email, cfg.Auth.Audience, cfg.Auth.Issuer, exp)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
