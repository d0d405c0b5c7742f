package services

import (
	"chopnow/pkg/apperr"

	"gorm.io/gorm"
)

// Every transition is a conditional write guarded by the expected
// current status, so a vendor action racing a customer cancel can never
// both succeed. Only order_status_id and updated_at are touched.

// ----- Customer actions -----

// CustomerCancel checks ownership before any write, then moves the
// order to Cancelled unless it already reached a terminal status.
func (s *OrderService) CustomerCancel(userID, orderID uint) error {
	if userID == 0 {
		return apperr.ErrUnauthenticated
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return apperr.ErrForbidden
		}
		if o.OrderStatusID == s.Status.Completed || o.OrderStatusID == s.Status.Cancelled {
			return apperr.ErrInvalidTransition
		}

		affected, err := s.Repo.CancelGuard(tx, o.ID, s.Status.Cancelled, s.Status.terminal())
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrInvalidTransition
		}
		s.Log.Info("order cancelled by customer", "orderId", o.ID, "userId", userID)
		return nil
	})
}

// ----- Vendor actions -----

// VendorAccept moves Placed to Preparing. Accepting is blocked when any
// ordered dish has since been taken off the menu; the availability
// check runs in the same transaction as the status write.
func (s *OrderService) VendorAccept(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}

		cnt, err := s.Repo.CountUnavailableDishes(tx, o.ID)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return apperr.ErrItemsUnavailable
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, s.Status.Placed, s.Status.Preparing)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrInvalidTransition
		}
		s.Log.Info("order accepted", "orderId", o.ID)
		return nil
	})
}

// VendorReady moves Preparing to Ready.
func (s *OrderService) VendorReady(orderID uint) error {
	return s.vendorStep(orderID, s.Status.Preparing, s.Status.Ready, "order ready")
}

// VendorComplete moves Ready to Completed.
func (s *OrderService) VendorComplete(orderID uint) error {
	return s.vendorStep(orderID, s.Status.Ready, s.Status.Completed, "order completed")
}

func (s *OrderService) vendorStep(orderID, fromID, toID uint, msg string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, fromID, toID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrInvalidTransition
		}
		s.Log.Info(msg, "orderId", o.ID)
		return nil
	})
}

// VendorCancel rejects any order that has not reached a terminal
// status.
func (s *OrderService) VendorCancel(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		affected, err := s.Repo.CancelGuard(tx, o.ID, s.Status.Cancelled, s.Status.terminal())
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrInvalidTransition
		}
		s.Log.Info("order cancelled by vendor", "orderId", o.ID)
		return nil
	})
}
