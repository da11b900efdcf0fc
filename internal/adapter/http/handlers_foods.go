package adapthttp

import "net/http"

func (s *Server) handleListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := s.foods.ListFoods(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"foods": foods})
}
