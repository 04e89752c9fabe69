package services

import (
	"fmt"

	"griddle/app/models"
	"griddle/app/repositories"
)

// VoteAction selects which counter a vote lands on.
type VoteAction string

const (
	ActionLike    VoteAction = "like"
	ActionDislike VoteAction = "dislike"
)

// VoteResult is the counter pair after a vote has been applied.
type VoteResult struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// EngagementService applies like/dislike transitions for (post, voter) pairs.
// The voter identity is an opaque string supplied by the caller; equality is
// the only deduplication.
type EngagementService struct {
	postRepo repositories.PostRepository
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(postRepo repositories.PostRepository) *EngagementService {
	return &EngagementService{postRepo: postRepo}
}

// Vote casts the voter's like or dislike on the post. Casting the same vote
// twice fails with ErrDuplicateVote and changes nothing; casting the opposite
// vote retracts the previous one in the same step.
func (s *EngagementService) Vote(postID, voterID string, action VoteAction) (VoteResult, error) {
	if action != ActionLike && action != ActionDislike {
		return VoteResult{}, fmt.Errorf("%w: unknown vote action %q", models.ErrValidation, action)
	}

	var result VoteResult
	_, err := s.postRepo.Mutate(postID, func(post *models.Post) error {
		target, opposite := post.LikedBy, post.DislikedBy
		if action == ActionDislike {
			target, opposite = post.DislikedBy, post.LikedBy
		}

		if target.Has(voterID) {
			return fmt.Errorf("%w: you already %sd this post", models.ErrDuplicateVote, action)
		}

		opposite.Remove(voterID)
		target.Add(voterID)

		// Counters always mirror set sizes.
		post.Likes = post.LikedBy.Len()
		post.Dislikes = post.DislikedBy.Len()

		result = VoteResult{Likes: post.Likes, Dislikes: post.Dislikes}
		return nil
	})
	if err != nil {
		return VoteResult{}, err
	}
	return result, nil
}
